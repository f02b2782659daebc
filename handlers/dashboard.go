package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
	"ramstone/templates"
)

// HandleDashboard lists all documents, newest first.
func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("documents", "id != ''", "-updated", 0, 0)
		if err != nil {
			log.Printf("dashboard: could not list documents: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := templates.DashboardData{}
		for _, rec := range records {
			data.Documents = append(data.Documents, templates.DocumentListItem{
				ID:           rec.Id,
				Kind:         services.DocumentKind(rec.GetString("kind")).Title(),
				Number:       rec.GetString("number"),
				CustomerName: rec.GetString("customer_name"),
				Total:        rec.GetFloat("total"),
				Updated:      rec.GetDateTime("updated").Time().Format("02/01/2006"),
			})
		}

		site := siteFor(e, "Dashboard — Ramstone Creative Solutions", "", "/admin")
		return templates.Dashboard(site, data).Render(e.Request.Context(), e.Response)
	}
}
