package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
)

type galleryResponse struct {
	Filter     models.Category    `json:"filter"`
	Categories []models.Category  `json:"categories"`
	Items      []models.MediaItem `json:"items"`
	Total      int                `json:"total"`
}

type lightboxResponse struct {
	Open     bool              `json:"open"`
	Filter   models.Category   `json:"filter"`
	Grid     models.Category   `json:"grid"`
	Item     *models.MediaItem `json:"item,omitempty"`
	Position int               `json:"position,omitempty"`
	Total    int               `json:"total"`
	Action   string            `json:"action,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Encoding response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func apiStatus(err error) int {
	switch {
	case errors.Is(err, gallery.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, gallery.ErrItemNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// GalleryAPIHandler returns the filtered view as JSON
func (h *Handler) GalleryAPIHandler(w http.ResponseWriter, r *http.Request) {
	filter := models.Category(r.URL.Query().Get("filter"))
	if filter == "" {
		filter = models.CategoryAll
	}

	items, err := h.service.FilteredItems(r.Context(), filter)
	if err != nil {
		h.writeError(w, apiStatus(err), err)
		return
	}

	h.writeJSON(w, http.StatusOK, galleryResponse{
		Filter:     filter,
		Categories: h.service.Categories(),
		Items:      items,
		Total:      len(items),
	})
}

// LightboxAPIHandler restores a lightbox, applies an optional action or key and
// returns the resulting state as JSON
func (h *Handler) LightboxAPIHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	item := q.Get("item")
	if item == "" {
		h.writeError(w, http.StatusBadRequest, errors.New("item is required"))
		return
	}

	st, err := h.service.NewGallery(r.Context(), models.Category(q.Get("filter")), item)
	if err != nil {
		h.writeError(w, apiStatus(err), err)
		return
	}
	if grid := q.Get("grid"); grid != "" && !st.SelectFilter(models.Category(grid)) && models.Category(grid) != st.ActiveFilter() {
		h.writeError(w, http.StatusBadRequest, gallery.ErrUnknownCategory)
		return
	}

	resp := lightboxResponse{}
	switch {
	case q.Get("key") != "":
		action, _ := st.HandleKey(q.Get("key"))
		resp.Action = action.String()
	case q.Get("action") != "":
		action, err := gallery.ParseAction(q.Get("action"))
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
		st.Apply(action)
		resp.Action = action.String()
	}

	resp.Filter = st.LightboxFilter()
	resp.Grid = st.ActiveFilter()
	if cur, ok := st.Current(); ok {
		resp.Open = true
		resp.Item = &cur
		resp.Position, resp.Total, _ = st.Position()
	} else {
		resp.Total = len(st.Filtered())
	}
	h.writeJSON(w, http.StatusOK, resp)
}
