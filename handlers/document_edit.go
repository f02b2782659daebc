package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
	"ramstone/templates"
)

func editorSite(e *core.RequestEvent, doc *services.Document) templates.Site {
	title := fmt.Sprintf("%s %s — Ramstone Creative Solutions", doc.Kind.Title(), doc.Number)
	return siteFor(e, title, "", "/admin")
}

// HandleDocumentEdit renders the editor for one document.
func HandleDocumentEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, err := services.LoadDocument(app, e.Request.PathValue("documentId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		data := templates.EditorData{Doc: doc}
		return templates.Editor(editorSite(e, doc), data).Render(e.Request.Context(), e.Response)
	}
}

// HandleDocumentSave applies the submitted document-level fields,
// recomputes the totals and persists the result. Invalid numeric
// input is coerced, never rejected.
func HandleDocumentSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		documentId := e.Request.PathValue("documentId")
		doc, err := services.LoadDocument(app, documentId)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		for _, name := range services.DocumentFieldNames {
			if _, present := e.Request.Form[name]; present {
				services.ApplyField(doc, name, e.Request.FormValue(name))
			}
		}
		services.Recompute(doc)

		if err := saveDocument(app, documentId, doc); err != nil {
			log.Printf("document_edit: could not save document %s: %v", documentId, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Document saved")
		redirectURL := fmt.Sprintf("/admin/documents/%s/edit", documentId)
		if isHTMX(e.Request) {
			e.Response.Header().Set("HX-Redirect", redirectURL)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, redirectURL)
	}
}

// HandleDocumentFieldPatch applies one document-level field from an
// HTMX change event and responds with the refreshed items-and-totals
// fragment.
func HandleDocumentFieldPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		documentId := e.Request.PathValue("documentId")
		doc, err := services.LoadDocument(app, documentId)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		for _, name := range services.DocumentFieldNames {
			if _, present := e.Request.Form[name]; present {
				services.ApplyField(doc, name, e.Request.FormValue(name))
			}
		}
		services.Recompute(doc)

		if err := saveDocument(app, documentId, doc); err != nil {
			log.Printf("document_edit: could not save document %s: %v", documentId, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return templates.ItemsSection(doc).Render(e.Request.Context(), e.Response)
	}
}

// saveDocument writes the document-level fields back to its record.
func saveDocument(app *pocketbase.PocketBase, documentId string, doc *services.Document) error {
	rec, err := app.FindRecordById("documents", documentId)
	if err != nil {
		return fmt.Errorf("document %s not found: %w", documentId, err)
	}
	services.ApplyDocumentToRecord(rec, doc)
	return app.Save(rec)
}
