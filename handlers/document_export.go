package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleDocumentPDF generates and downloads the document as a PDF.
// PDF generation is the one export that can visibly fail; the error
// message points the user at the print view, which shares the same
// layout.
func HandleDocumentPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, err := services.LoadDocument(app, e.Request.PathValue("documentId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		pdfBytes, err := services.GenerateDocumentPDF(doc)
		if err != nil {
			log.Printf("document_export: could not generate PDF for %s: %v", doc.ID, err)
			return ErrorToast(e, http.StatusInternalServerError,
				"Could not generate the PDF. Please use the print view instead.")
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(doc.Number))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleDocumentExcel generates and downloads the document as an
// Excel workbook.
func HandleDocumentExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		doc, err := services.LoadDocument(app, e.Request.PathValue("documentId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		xlsxBytes, err := services.GenerateDocumentExcel(doc)
		if err != nil {
			log.Printf("document_export: could not generate Excel for %s: %v", doc.ID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate the Excel file")
		}

		filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(doc.Number))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
