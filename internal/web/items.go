package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/partsbin/internal/imaging"
	"github.com/erazemk/partsbin/internal/model"
	"github.com/erazemk/partsbin/internal/store"
)

// maxImageBytes caps uploaded photo size.
const maxImageBytes = 5 << 20

// itemForm carries submitted values back to the add-item page so a
// validation error doesn't wipe the form.
type itemForm struct {
	Category string
	Name     string
	Quantity string
	Notes    string
	Price    string
}

// ItemsPage handles GET /items: the search and manage page. An empty query
// lists everything.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	query := r.URL.Query().Get("q")

	var items []model.Item
	var err error
	if query == "" {
		items, err = store.ListAll(r.Context(), s.DB)
	} else {
		items, err = store.Search(r.Context(), s.DB, query)
	}
	if err != nil {
		slog.Error("failed to list items", "error", err)
	}

	page := PageData{Title: "Search & Manage", User: claims}
	switch {
	case r.URL.Query().Get("err") == "badinput":
		page.Error = "Invalid values were not saved"
	case r.URL.Query().Get("saved") != "":
		page.Success = "Item updated"
	case r.URL.Query().Get("deleted") != "":
		page.Success = "Item deleted"
	case r.URL.Query().Get("added") != "":
		page.Success = "Item added"
	}

	s.Templates.Render(w, "items.html", &struct {
		PageData
		Items []model.Item
		Query string
	}{
		PageData: page,
		Items:    items,
		Query:    query,
	})
}

// ItemNewPage handles GET /items/new.
func (s *Server) ItemNewPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	s.Templates.Render(w, "item_new.html", &struct {
		PageData
		Categories []string
		Form       itemForm
	}{
		PageData:   PageData{Title: "Add Item", User: claims},
		Categories: model.Categories,
	})
}

// ItemCreateSubmit handles POST /items/new.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		http.Error(w, "upload too large", http.StatusBadRequest)
		return
	}

	form := itemForm{
		Category: r.FormValue("category"),
		Name:     r.FormValue("name"),
		Quantity: r.FormValue("quantity"),
		Notes:    r.FormValue("notes"),
		Price:    r.FormValue("price"),
	}

	rerender := func(message string) {
		s.Templates.Render(w, "item_new.html", &struct {
			PageData
			Categories []string
			Form       itemForm
		}{
			PageData:   PageData{Title: "Add Item", User: claims, Error: message},
			Categories: model.Categories,
			Form:       form,
		})
	}

	if form.Name == "" {
		rerender("Item name is required")
		return
	}
	if !model.ValidCategory(form.Category) {
		rerender("Pick a category from the list")
		return
	}
	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil || quantity < 0 {
		rerender("Quantity must be a whole number, zero or more")
		return
	}
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		rerender("Price must be a number, zero or more")
		return
	}

	image, err := readImageFile(r)
	if err != nil {
		rerender("Could not read the uploaded photo")
		return
	}

	item, err := store.Insert(r.Context(), s.DB, form.Category, form.Name, quantity, form.Notes, price, image)
	if err != nil {
		slog.Error("failed to insert item", "error", err)
		rerender("Saving failed, try again")
		return
	}

	slog.Info("item added", "id", item.ID, "name", item.Name, "category", item.Category)
	http.Redirect(w, r, "/items?added=1", http.StatusSeeOther)
}

// ItemUpdateSubmit handles POST /items/{id}: the inline edit form on the
// manage page. Category and name are fixed after creation; only quantity,
// notes, price and the photo can change.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		http.Error(w, "upload too large", http.StatusBadRequest)
		return
	}

	quantity, qErr := strconv.Atoi(r.FormValue("quantity"))
	price, pErr := strconv.ParseFloat(r.FormValue("price"), 64)
	if qErr != nil || quantity < 0 || pErr != nil || price < 0 {
		http.Redirect(w, r, "/items?err=badinput", http.StatusSeeOther)
		return
	}

	// A form submitted without a new photo keeps the stored one.
	image, err := readImageFile(r)
	if err != nil {
		http.Redirect(w, r, "/items?err=badinput", http.StatusSeeOther)
		return
	}

	if err := store.Update(r.Context(), s.DB, id, quantity, r.FormValue("notes"), price, image); err != nil {
		slog.Error("failed to update item", "id", id, "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	slog.Info("item updated", "id", id, "quantity", quantity)
	http.Redirect(w, r, "/items?saved=1", http.StatusSeeOther)
}

// ItemDeleteSubmit handles POST /items/{id}/delete.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.Delete(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to delete item", "id", id, "error", err)
		http.Error(w, "failed to delete", http.StatusInternalServerError)
		return
	}

	slog.Info("item deleted", "id", id)
	http.Redirect(w, r, "/items?deleted=1", http.StatusSeeOther)
}

// ItemImageGet handles GET /items/{id}/image: the stored photo bytes exactly
// as uploaded, content type sniffed.
func (s *Server) ItemImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, err := store.GetImage(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}

// ItemThumbGet handles GET /items/{id}/thumb: a downscaled JPEG for table
// rows. Falls back to the raw bytes when they can't be decoded.
func (s *Server) ItemThumbGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, err := store.GetImage(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	thumb, err := imaging.Thumbnail(data, imaging.ThumbSize)
	if err != nil {
		slog.Warn("stored image not decodable, serving original", "id", id, "error", err)
		w.Header().Set("Content-Type", http.DetectContentType(data))
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Write(data)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(thumb); err != nil {
		slog.Error("failed to write thumbnail response", "error", err)
	}
}

// readImageFile pulls the optional photo out of a parsed multipart form.
// A missing file part, or one submitted with no file chosen, returns nil.
func readImageFile(r *http.Request) ([]byte, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return data, nil
}
