package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/partsbin/internal/model"
	"github.com/erazemk/partsbin/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB *sqlx.DB
}

type createItemRequest struct {
	Category string  `json:"category"`
	Name     string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
	Price    float64 `json:"price"`
	Image    []byte  `json:"image_data,omitempty"`
}

type updateItemRequest struct {
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
	Price    float64 `json:"price"`
	Image    []byte  `json:"image_data,omitempty"`
}

// List handles GET /api/items. An optional q parameter switches to literal
// substring search, same as the web page.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var items []model.Item
	var err error
	if query == "" {
		items, err = store.ListAll(r.Context(), h.DB)
	} else {
		items, err = store.Search(r.Context(), h.DB, query)
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "item_name required")
		return
	}
	if !model.ValidCategory(req.Category) {
		jsonError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if req.Quantity < 0 || req.Price < 0 {
		jsonError(w, http.StatusBadRequest, "quantity and price must be zero or more")
		return
	}

	item, err := store.Insert(r.Context(), h.DB, req.Category, req.Name, req.Quantity, req.Notes, req.Price, req.Image)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	item.Image = nil // fetch via the image endpoint
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}. The image blob is left out of the JSON;
// has_image says whether the image endpoint will return anything.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetByID(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	item.Image = nil
	jsonResponse(w, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}. Quantity, notes and price are
// overwritten; image_data only replaces the stored image when present.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity < 0 || req.Price < 0 {
		jsonError(w, http.StatusBadRequest, "quantity and price must be zero or more")
		return
	}

	existing, err := store.GetByID(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := store.Update(r.Context(), h.DB, id, req.Quantity, req.Notes, req.Price, req.Image); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	item, err := store.GetByID(r.Context(), h.DB, id)
	if err != nil || item == nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	item.Image = nil
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}. Deleting twice is fine; both return
// the same answer.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.Delete(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// UploadImage handles PUT /api/items/{id}/image. The body is the raw image
// file; it is stored byte for byte.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	existing, err := store.GetByID(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "failed to read image body")
		return
	}
	if len(data) == 0 {
		jsonError(w, http.StatusBadRequest, "image body required")
		return
	}

	if err := store.SetImage(r.Context(), h.DB, id, data); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, err := store.GetImage(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
