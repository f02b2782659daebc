package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/collections"
	"ramstone/handlers"
	"ramstone/services"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	verifier := services.CredentialsFromEnv()
	sessions := services.NewSessionStore()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve the admin session cookie for every request
		se.Router.BindFunc(handlers.SessionMiddleware(sessions))

		// ── Public site ──────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome)
		se.Router.GET("/about", handlers.HandleAbout)
		se.Router.GET("/auto-repair", handlers.HandleAutoRepair)
		se.Router.GET("/general-supply", handlers.HandleGeneralSupply)
		se.Router.GET("/contact", handlers.HandleContact)

		// ── Auth ─────────────────────────────────────────────────
		se.Router.GET("/login", handlers.HandleLoginPage)
		se.Router.POST("/login", handlers.HandleLogin(verifier, sessions))
		se.Router.POST("/logout", handlers.HandleLogout(sessions))

		// ── Admin: dashboard and document CRUD ───────────────────
		se.Router.GET("/admin", handlers.RequireAdmin(handlers.HandleDashboard(app)))
		se.Router.POST("/admin/documents", handlers.RequireAdmin(handlers.HandleDocumentCreate(app)))
		se.Router.GET("/admin/documents/{documentId}/edit", handlers.RequireAdmin(handlers.HandleDocumentEdit(app)))
		se.Router.POST("/admin/documents/{documentId}/save", handlers.RequireAdmin(handlers.HandleDocumentSave(app)))
		se.Router.PATCH("/admin/documents/{documentId}/field", handlers.RequireAdmin(handlers.HandleDocumentFieldPatch(app)))
		se.Router.DELETE("/admin/documents/{documentId}", handlers.RequireAdmin(handlers.HandleDocumentDelete(app)))

		// ── Admin: line items ────────────────────────────────────
		se.Router.POST("/admin/documents/{documentId}/items", handlers.RequireAdmin(handlers.HandleLineItemAdd(app)))
		se.Router.PATCH("/admin/documents/{documentId}/items/{itemId}", handlers.RequireAdmin(handlers.HandleLineItemPatch(app)))
		se.Router.DELETE("/admin/documents/{documentId}/items/{itemId}", handlers.RequireAdmin(handlers.HandleLineItemDelete(app)))

		// ── Admin: preview, export, share ────────────────────────
		se.Router.GET("/admin/documents/{documentId}/preview", handlers.RequireAdmin(handlers.HandleDocumentPreview(app)))
		se.Router.GET("/admin/documents/{documentId}/print", handlers.RequireAdmin(handlers.HandleDocumentPrint(app)))
		se.Router.GET("/admin/documents/{documentId}/pdf", handlers.RequireAdmin(handlers.HandleDocumentPDF(app)))
		se.Router.GET("/admin/documents/{documentId}/excel", handlers.RequireAdmin(handlers.HandleDocumentExcel(app)))
		se.Router.GET("/admin/documents/{documentId}/whatsapp", handlers.RequireAdmin(handlers.HandleDocumentWhatsApp(app)))
		se.Router.GET("/admin/documents/{documentId}/email", handlers.RequireAdmin(handlers.HandleDocumentEmail(app)))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
