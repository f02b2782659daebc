package handlers

import (
	"html/template"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
	"ramstone/templates"
)

// HandleDocumentPreview renders the on-screen document preview with
// its share and export actions.
func HandleDocumentPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, err := services.LoadDocument(app, e.Request.PathValue("documentId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		markup, err := templates.RenderDocument(doc)
		if err != nil {
			return ErrorToast(e, http.StatusInternalServerError, "Could not render the document")
		}

		email := services.BuildEmailSummary(doc)
		data := templates.PreviewData{
			Doc:          doc,
			Markup:       template.HTML(markup),
			WhatsAppURL:  services.WhatsAppShareURL(doc),
			EmailURL:     services.EmailShareURL(doc),
			EmailSubject: email.Subject,
			EmailBody:    email.Body,
		}
		return templates.Preview(editorSite(e, doc), data).Render(e.Request.Context(), e.Response)
	}
}

// HandleDocumentPrint serves the standalone print view. It shares the
// markup with the preview, so it works even when PDF generation does
// not.
func HandleDocumentPrint(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, err := services.LoadDocument(app, e.Request.PathValue("documentId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		page, err := templates.RenderPrintDocument(doc)
		if err != nil {
			return ErrorToast(e, http.StatusInternalServerError, "Could not render the document")
		}
		return e.HTML(http.StatusOK, page)
	}
}
