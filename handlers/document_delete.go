package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleDocumentDelete removes a document. Its line items go with it
// via the cascade on the relation.
func HandleDocumentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("documents", e.Request.PathValue("documentId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("document_delete: could not delete document %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Document deleted")
		return e.String(http.StatusOK, "")
	}
}
