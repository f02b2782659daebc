package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
	"ramstone/templates"
)

// itemFieldNames are the line item form fields an HTMX patch may carry.
var itemFieldNames = []string{"description", "category", "quantity", "unit_price"}

// renderItemsSection reloads the document and responds with the
// items-and-totals fragment every line item mutation swaps in.
func renderItemsSection(app *pocketbase.PocketBase, e *core.RequestEvent, documentId string) error {
	doc, err := services.LoadDocument(app, documentId)
	if err != nil {
		return ErrorToast(e, http.StatusNotFound, "Document not found")
	}
	return templates.ItemsSection(doc).Render(e.Request.Context(), e.Response)
}

// HandleLineItemAdd appends an empty line item to a document.
func HandleLineItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentId := e.Request.PathValue("documentId")
		doc, err := services.LoadDocument(app, documentId)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}

		itemCol, err := app.FindCollectionByNameOrId("line_items")
		if err != nil {
			log.Printf("line_items: could not find line_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		item := services.LineItem{
			SNo:      len(doc.Items) + 1,
			Category: services.CategoryRepair,
			Quantity: 1,
		}
		rec := core.NewRecord(itemCol)
		services.ApplyItemToRecord(rec, documentId, &item)
		if err := app.Save(rec); err != nil {
			log.Printf("line_items: could not save line item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return renderItemsSection(app, e, documentId)
	}
}

// HandleLineItemPatch applies one field change to a line item,
// re-derives its amount and the document totals, and persists both.
func HandleLineItemPatch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		documentId := e.Request.PathValue("documentId")
		itemId := e.Request.PathValue("itemId")

		doc, err := services.LoadDocument(app, documentId)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}
		item := services.ItemByID(doc, itemId)
		if item == nil {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}

		for _, name := range itemFieldNames {
			if _, present := e.Request.Form[name]; present {
				services.UpdateItem(doc, itemId, name, e.Request.FormValue(name))
			}
		}

		itemRec, err := app.FindRecordById("line_items", itemId)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}
		services.ApplyItemToRecord(itemRec, documentId, item)
		if err := app.Save(itemRec); err != nil {
			log.Printf("line_items: could not save line item %s: %v", itemId, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if err := saveDocument(app, documentId, doc); err != nil {
			log.Printf("line_items: could not save document totals: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return templates.ItemsSection(doc).Render(e.Request.Context(), e.Response)
	}
}

// HandleLineItemDelete removes one line item. The last remaining item
// is protected: the request is refused and the item keeps its values.
func HandleLineItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		documentId := e.Request.PathValue("documentId")
		itemId := e.Request.PathValue("itemId")

		doc, err := services.LoadDocument(app, documentId)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Document not found")
		}
		if services.ItemByID(doc, itemId) == nil {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}
		if !services.RemoveItem(doc, itemId) {
			return ErrorToast(e, http.StatusBadRequest, "A document must keep at least one line item")
		}

		itemRec, err := app.FindRecordById("line_items", itemId)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Line item not found")
		}
		if err := app.Delete(itemRec); err != nil {
			log.Printf("line_items: could not delete line item %s: %v", itemId, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// Renumber the survivors so S/No stays sequential.
		for i := range doc.Items {
			rec, err := app.FindRecordById("line_items", doc.Items[i].ID)
			if err != nil {
				continue
			}
			services.ApplyItemToRecord(rec, documentId, &doc.Items[i])
			if err := app.Save(rec); err != nil {
				log.Printf("line_items: could not renumber line item %s: %v", doc.Items[i].ID, err)
			}
		}
		if err := saveDocument(app, documentId, doc); err != nil {
			log.Printf("line_items: could not save document totals: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return templates.ItemsSection(doc).Render(e.Request.Context(), e.Response)
	}
}
