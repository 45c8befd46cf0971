package handlers

import (
	"context"
	"errors"
	"net/http"

	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
)

// knownFilter returns c when it is a gallery category and the aggregate otherwise.
// Unrecognised input is ignored rather than reported.
func (h *Handler) knownFilter(c string) models.Category {
	category := models.Category(c)
	if c == "" || !gallery.ContainsCategory(h.service.Categories(), category) {
		if c != "" {
			h.logger.Debug("Ignoring unknown gallery filter", "filter", c)
		}
		return models.CategoryAll
	}
	return category
}

// session restores a viewing session from the URL: filter is the list the
// lightbox navigates, item the open title and grid the filter shown behind it.
func (h *Handler) session(ctx context.Context, filter models.Category, item string, grid models.Category) (*gallery.State, error) {
	st, err := h.service.NewGallery(ctx, filter, item)
	if err != nil {
		return nil, err
	}
	if grid != "" {
		st.SelectFilter(grid)
	}
	return st, nil
}

func stateURL(st *gallery.State) string {
	if item, ok := st.Current(); ok {
		return lightboxURL(st.LightboxFilter(), item.Title, st.ActiveFilter())
	}
	return galleryURL(st.ActiveFilter())
}

func (h *Handler) galleryPage(ctx context.Context, st *gallery.State) GalleryPage {
	page, unmount := h.mount("Gallery", "/gallery", "intro", "filters", "grid")
	defer unmount()

	data := GalleryPage{
		Page:       page,
		Active:     st.ActiveFilter(),
		Generation: st.Generation(),
		Tiles:      tiles(st.Filtered(), st.ActiveFilter()),
		Lightbox:   lightboxView(st),
	}
	data.NoScroll = data.Lightbox != nil

	for _, c := range st.Categories() {
		items, err := h.service.FilteredItems(ctx, c)
		if err != nil {
			continue
		}
		data.Filters = append(data.Filters, FilterLink{
			Category: c,
			Count:    len(items),
			URL:      galleryURL(c),
			Active:   c == st.ActiveFilter(),
		})
	}
	return data
}

// GalleryHandler renders the gallery grid for the selected filter
func (h *Handler) GalleryHandler(w http.ResponseWriter, r *http.Request) {
	filter := h.knownFilter(r.URL.Query().Get("filter"))

	st, err := h.service.NewGallery(r.Context(), filter, "")
	if err != nil {
		h.logger.Error("Restoring gallery", "filter", filter, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, http.StatusOK, "gallery", h.galleryPage(r.Context(), st))
}

// LightboxHandler renders the gallery with the lightbox open on an item
func (h *Handler) LightboxHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := h.knownFilter(q.Get("filter"))
	var grid models.Category
	if g := q.Get("grid"); g != "" {
		grid = h.knownFilter(g)
	}

	st, err := h.session(r.Context(), filter, q.Get("item"), grid)
	if err != nil {
		if errors.Is(err, gallery.ErrItemNotFound) {
			h.logger.Debug("Lightbox item not found", "filter", filter, "item", q.Get("item"))
			h.NotFoundHandler(w, r)
			return
		}
		h.logger.Error("Restoring lightbox", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if !st.IsOpen() {
		http.Redirect(w, r, stateURL(st), http.StatusSeeOther)
		return
	}

	h.render(w, http.StatusOK, "gallery", h.galleryPage(r.Context(), st))
}

// LightboxActionHandler applies a lightbox control or key press and redirects
// to the resulting state
func (h *Handler) LightboxActionHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	filter := h.knownFilter(r.PostForm.Get("filter"))
	var grid models.Category
	if g := r.PostForm.Get("grid"); g != "" {
		grid = h.knownFilter(g)
	}

	st, err := h.session(r.Context(), filter, r.PostForm.Get("item"), grid)
	if err != nil {
		h.logger.Debug("Lightbox action on missing item", "filter", filter, "err", err)
		http.Redirect(w, r, galleryURL(filter), http.StatusSeeOther)
		return
	}

	if key := r.PostForm.Get("key"); key != "" {
		if _, ok := st.HandleKey(key); !ok {
			h.logger.Debug("Unbound lightbox key", "key", key)
		}
	} else {
		action, err := gallery.ParseAction(r.PostForm.Get("action"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		st.Apply(action)
	}

	http.Redirect(w, r, stateURL(st), http.StatusSeeOther)
}
