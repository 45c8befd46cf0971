package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-site/pkg/catalog"
	"hotel-site/pkg/config"
	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
	"hotel-site/pkg/services"
)

type stubRenderer struct {
	name string
	data any
	err  error
}

func (s *stubRenderer) Render(w io.Writer, name string, data any) error {
	s.name = name
	s.data = data
	if s.err != nil {
		return s.err
	}
	_, err := fmt.Fprintf(w, "<%s>", name)
	return err
}

func newTestHandler(t *testing.T, policy gallery.FilterChangePolicy) (http.Handler, *stubRenderer) {
	t.Helper()
	cfg := &config.Config{CacheTTL: time.Minute, FilterChange: policy}
	logger := log.New(io.Discard)
	svc := services.NewService(cfg, logger, catalog.Default())
	renderer := &stubRenderer{}
	return New(svc, renderer, logger, "").Routes(), renderer
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func titles(tiles []GalleryTile) []string {
	out := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		out = append(out, tile.Title)
	}
	return out
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHome(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "index", r.name)

	page := r.data.(HomePage)
	assert.Equal(t, "Maison Sel", page.Brand.Name)
	assert.Len(t, page.Destinations, 3)
	assert.Len(t, page.Offers, 2)
	assert.Len(t, page.Highlights, 4)
	require.Len(t, page.Reveal, 5)
	assert.Equal(t, "hero", page.Reveal[0].ID)
	assert.False(t, page.Reveal[0].Visible)
}

func TestGallery_Filter(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := get(t, h, "/gallery?filter=Bedroom")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gallery", r.name)

	page := r.data.(GalleryPage)
	assert.Equal(t, models.Category("Bedroom"), page.Active)
	assert.Equal(t, []string{"Salt Room", "Harbour Suite", "Reed Cabin"}, titles(page.Tiles))
	assert.Nil(t, page.Lightbox)
	assert.False(t, page.NoScroll)
	assert.Equal(t, "/gallery/view?filter=Bedroom&item=Salt+Room", page.Tiles[0].URL)

	require.Len(t, page.Filters, 5)
	assert.Equal(t, models.CategoryAll, page.Filters[0].Category)
	assert.Equal(t, 12, page.Filters[0].Count)
	assert.Equal(t, "/gallery", page.Filters[0].URL)
	for _, f := range page.Filters {
		assert.Equal(t, f.Category == "Bedroom", f.Active, "filter %s", f.Category)
	}
	assert.True(t, page.Nav[1].Active)
}

func TestGallery_UnknownFilterShowsAll(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := get(t, h, "/gallery?filter=Helipad")
	require.Equal(t, http.StatusOK, rec.Code)

	page := r.data.(GalleryPage)
	assert.Equal(t, models.CategoryAll, page.Active)
	assert.Len(t, page.Tiles, 12)
}

func TestLightbox_Open(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := get(t, h, "/gallery/view?filter=Bedroom&item=Reed+Cabin")
	require.Equal(t, http.StatusOK, rec.Code)

	page := r.data.(GalleryPage)
	require.NotNil(t, page.Lightbox)
	assert.True(t, page.NoScroll)

	lb := page.Lightbox
	assert.Equal(t, "Reed Cabin", lb.Item.Title)
	assert.Equal(t, 3, lb.Position)
	assert.Equal(t, 3, lb.Total)
	assert.Equal(t, "/gallery/view?filter=Bedroom&item=Salt+Room", lb.NextURL)
	assert.Equal(t, "/gallery/view?filter=Bedroom&item=Harbour+Suite", lb.PrevURL)
	assert.Equal(t, "/gallery?filter=Bedroom", lb.CloseURL)
}

func TestLightbox_ItemOutsideFilter(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := get(t, h, "/gallery/view?filter=Terrace&item=Salt+Room")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", r.name)
}

func TestLightbox_GridChangeClosesUnderClosePolicy(t *testing.T) {
	h, _ := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := get(t, h, "/gallery/view?filter=Bedroom&item=Salt+Room&grid=Terrace")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/gallery?filter=Terrace", rec.Header().Get("Location"))
}

func TestLightbox_GridChangeKeepsSnapshot(t *testing.T) {
	h, r := newTestHandler(t, gallery.SnapshotOnOpen)
	rec := get(t, h, "/gallery/view?filter=Bedroom&item=Salt+Room&grid=Terrace")
	require.Equal(t, http.StatusOK, rec.Code)

	page := r.data.(GalleryPage)
	assert.Equal(t, models.Category("Terrace"), page.Active)
	assert.Equal(t, []string{"Courtyard Pool", "Cliff Terrace", "Dune Deck"}, titles(page.Tiles))

	require.NotNil(t, page.Lightbox)
	assert.Equal(t, models.Category("Bedroom"), page.Lightbox.Filter)
	assert.Equal(t, 1, page.Lightbox.Position)
	assert.Equal(t, 3, page.Lightbox.Total)
	assert.Equal(t, "/gallery/view?filter=Bedroom&grid=Terrace&item=Harbour+Suite", page.Lightbox.NextURL)
}

func TestLightboxAction(t *testing.T) {
	h, _ := newTestHandler(t, gallery.CloseOnFilterChange)

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "next wraps to first",
			form: url.Values{"filter": {"Bedroom"}, "item": {"Reed Cabin"}, "action": {"next"}},
			want: "/gallery/view?filter=Bedroom&item=Salt+Room",
		},
		{
			name: "prev wraps to last",
			form: url.Values{"filter": {"Bedroom"}, "item": {"Salt Room"}, "action": {"prev"}},
			want: "/gallery/view?filter=Bedroom&item=Reed+Cabin",
		},
		{
			name: "close returns to grid",
			form: url.Values{"filter": {"Bedroom"}, "item": {"Salt Room"}, "action": {"close"}},
			want: "/gallery?filter=Bedroom",
		},
		{
			name: "arrow right",
			form: url.Values{"item": {"Garden Breakfast"}, "key": {"ArrowRight"}},
			want: "/gallery/view?item=Salt+Room",
		},
		{
			name: "arrow left",
			form: url.Values{"filter": {"Dining"}, "item": {"Long Table"}, "key": {"ArrowLeft"}},
			want: "/gallery/view?filter=Dining&item=Garden+Breakfast",
		},
		{
			name: "escape",
			form: url.Values{"filter": {"Dining"}, "item": {"Long Table"}, "key": {"Escape"}},
			want: "/gallery?filter=Dining",
		},
		{
			name: "unbound key keeps state",
			form: url.Values{"filter": {"Dining"}, "item": {"Long Table"}, "key": {"Enter"}},
			want: "/gallery/view?filter=Dining&item=Long+Table",
		},
		{
			name: "missing item falls back to grid",
			form: url.Values{"filter": {"Dining"}, "item": {"Salt Room"}, "action": {"next"}},
			want: "/gallery?filter=Dining",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, "/gallery/view", tt.form)
			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))
		})
	}
}

func TestLightboxAction_UnknownAction(t *testing.T) {
	h, _ := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := post(t, h, "/gallery/view", url.Values{"item": {"Salt Room"}, "action": {"first"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGalleryAPI(t *testing.T) {
	h, _ := newTestHandler(t, gallery.CloseOnFilterChange)

	rec := get(t, h, "/api/gallery?filter=Dining")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp galleryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.Category("Dining"), resp.Filter)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "Long Table", resp.Items[0].Title)
	assert.Len(t, resp.Categories, 5)

	rec = get(t, h, "/api/gallery")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Total)

	rec = get(t, h, "/api/gallery?filter=Helipad")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLightboxAPI(t *testing.T) {
	h, _ := newTestHandler(t, gallery.CloseOnFilterChange)

	rec := get(t, h, "/api/gallery/lightbox?filter=Dining&item=Long+Table&action=prev")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp lightboxResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Open)
	assert.Equal(t, "Garden Breakfast", resp.Item.Title)
	assert.Equal(t, 3, resp.Position)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "prev", resp.Action)

	rec = get(t, h, "/api/gallery/lightbox?filter=Dining&item=Long+Table&key=Escape")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = lightboxResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Open)
	assert.Nil(t, resp.Item)
	assert.Equal(t, "close", resp.Action)
}

func TestLightboxAPI_Errors(t *testing.T) {
	h, _ := newTestHandler(t, gallery.CloseOnFilterChange)

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/gallery/lightbox?filter=Dining").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/gallery/lightbox?filter=Dining&item=Salt+Room").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/gallery/lightbox?filter=Helipad&item=Salt+Room").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/gallery/lightbox?item=Salt+Room&action=first").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/gallery/lightbox?item=Salt+Room&grid=Helipad").Code)
}

func TestDestination(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)

	rec := get(t, h, "/destinations/ischia")
	require.Equal(t, http.StatusOK, rec.Code)
	page := r.data.(DestinationPage)
	assert.Equal(t, "Maison Sel Ischia", page.Destination.Name)
	require.Len(t, page.Destination.AmenityViews, 4)
	assert.Equal(t, models.AmenitySpa.Icon(), page.Destination.AmenityViews[0].Icon)
	assert.Len(t, page.Offers, 2)

	rec = get(t, h, "/destinations/paris")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticPages(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)

	for target, view := range map[string]string{
		"/destinations":  "destinations",
		"/offers":        "offers",
		"/club":          "club",
		"/contact":       "contact",
		"/legal/privacy": "legal",
	} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, view, r.name, target)
	}

	rec := get(t, h, "/legal/cookies")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, h, "/no/such/page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", r.name)
}

func TestContactSubmit(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)

	rec := post(t, h, "/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"A room for May?"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	page := r.data.(ContactPage)
	assert.NotEmpty(t, page.Form.Reference)

	rec = post(t, h, "/contact", url.Values{"email": {"nope"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	page = r.data.(ContactPage)
	assert.Empty(t, page.Form.Reference)
	assert.Contains(t, page.Form.Errors, "name")
	assert.Contains(t, page.Form.Errors, "email")
	assert.Equal(t, "nope", page.Form.Values["email"])
}

func TestClubSubmit(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)

	rec := post(t, h, "/club", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "tier": {"Platinum"}})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	page := r.data.(ClubPage)
	assert.Contains(t, page.Form.Errors, "tier")
	assert.Len(t, page.Tiers, 3)

	rec = post(t, h, "/club", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "tier": {"Regular"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, r.data.(ClubPage).Form.Reference)
}

func TestNewsletter(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)
	rec := post(t, h, "/newsletter", url.Values{"email": {"ada@example.com"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "newsletter", r.name)
}

func TestRenderError(t *testing.T) {
	h, r := newTestHandler(t, gallery.CloseOnFilterChange)
	r.err = errors.New("boom")

	rec := get(t, h, "/offers")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
