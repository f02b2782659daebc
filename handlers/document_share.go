package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
)

// HandleDocumentWhatsApp redirects to the wa.me deep link carrying the
// document summary. The browser hands off to WhatsApp from there.
func HandleDocumentWhatsApp(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, err := services.LoadDocument(app, e.Request.PathValue("documentId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}
		return e.Redirect(http.StatusFound, services.WhatsAppShareURL(doc))
	}
}

// HandleDocumentEmail redirects to the mailto deep link for the
// document. Only the subject travels in the link; the body text sits
// on the preview page for copying.
func HandleDocumentEmail(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, err := services.LoadDocument(app, e.Request.PathValue("documentId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}
		return e.Redirect(http.StatusFound, services.EmailShareURL(doc))
	}
}
