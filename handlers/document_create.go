package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
)

// HandleDocumentCreate seeds a new quotation or invoice with its
// defaults and one empty line item, then opens the editor.
func HandleDocumentCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		kind := services.KindQuotation
		if e.Request.FormValue("kind") == string(services.KindInvoice) {
			kind = services.KindInvoice
		}

		doc := services.NewDocument(kind, time.Now())

		docCol, err := app.FindCollectionByNameOrId("documents")
		if err != nil {
			log.Printf("document_create: could not find documents collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		itemCol, err := app.FindCollectionByNameOrId("line_items")
		if err != nil {
			log.Printf("document_create: could not find line_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(docCol)
		services.ApplyDocumentToRecord(rec, doc)
		if err := app.Save(rec); err != nil {
			log.Printf("document_create: could not save document: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		for i := range doc.Items {
			itemRec := core.NewRecord(itemCol)
			services.ApplyItemToRecord(itemRec, rec.Id, &doc.Items[i])
			if err := app.Save(itemRec); err != nil {
				log.Printf("document_create: could not save line item: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		redirectURL := fmt.Sprintf("/admin/documents/%s/edit", rec.Id)
		if isHTMX(e.Request) {
			e.Response.Header().Set("HX-Redirect", redirectURL)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, redirectURL)
	}
}
