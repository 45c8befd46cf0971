package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"hotel-site/pkg/models"
	"hotel-site/pkg/reveal"
	"hotel-site/pkg/services"
	"hotel-site/pkg/views"
)

// Handler serves the site
type Handler struct {
	service   *services.Service
	views     views.Renderer
	logger    *log.Logger
	staticDir string
}

// New creates a handler
func New(service *services.Service, renderer views.Renderer, logger *log.Logger, staticDir string) *Handler {
	return &Handler{
		service:   service,
		views:     renderer,
		logger:    logger,
		staticDir: staticDir,
	}
}

// Routes returns the router of the whole site
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	if h.staticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	}

	r.Get("/", h.HomeHandler)
	r.Get("/destinations", h.DestinationsHandler)
	r.Get("/destinations/{slug}", h.DestinationHandler)
	r.Get("/gallery", h.GalleryHandler)
	r.Get("/gallery/view", h.LightboxHandler)
	r.Post("/gallery/view", h.LightboxActionHandler)
	r.Get("/offers", h.OffersHandler)
	r.Get("/club", h.ClubHandler)
	r.Post("/club", h.ClubSubmitHandler)
	r.Get("/contact", h.ContactHandler)
	r.Post("/contact", h.ContactSubmitHandler)
	r.Post("/newsletter", h.NewsletterHandler)
	r.Get("/legal/{section}", h.LegalHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/gallery", h.GalleryAPIHandler)
		r.Get("/gallery/lightbox", h.LightboxAPIHandler)
	})

	r.NotFound(h.NotFoundHandler)

	return r
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("Request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

var navigation = []NavLink{
	{Label: "Destinations", URL: "/destinations"},
	{Label: "Gallery", URL: "/gallery"},
	{Label: "Offers", URL: "/offers"},
	{Label: "Club", URL: "/club"},
	{Label: "Contact", URL: "/contact"},
}

// mount builds the layout data of a page and registers its reveal regions.
// The returned func tears the regions down once the page has rendered.
func (h *Handler) mount(title, active string, sections ...string) (Page, func()) {
	scope := reveal.NewScope()
	for _, id := range sections {
		scope.MustObserve(id, reveal.DefaultThreshold)
	}

	nav := make([]NavLink, len(navigation))
	copy(nav, navigation)
	for i := range nav {
		nav[i].Active = nav[i].URL == active
	}

	return Page{
		Brand:  h.service.Catalog().Brand,
		Title:  title,
		Nav:    nav,
		Reveal: scope.Regions(),
	}, scope.Close
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, name, data); err != nil {
		h.logger.Error("Template error", "view", name, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// HomeHandler renders the home page
func (h *Handler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	page, unmount := h.mount("", "/", "hero", "destinations", "highlights", "offers", "club")
	defer unmount()

	cat := h.service.Catalog()
	data := HomePage{Page: page}
	for _, d := range cat.Destinations {
		data.Destinations = append(data.Destinations, destinationView(d))
	}
	data.Offers = firstN(cat.Offers, 2)
	data.Highlights = tiles(firstN(h.service.Items(r.Context()), 4), models.CategoryAll)

	h.render(w, http.StatusOK, "index", data)
}

// DestinationsHandler renders the list of destinations
func (h *Handler) DestinationsHandler(w http.ResponseWriter, _ *http.Request) {
	page, unmount := h.mount("Destinations", "/destinations", "intro", "destinations")
	defer unmount()

	data := DestinationsPage{Page: page}
	for _, d := range h.service.Catalog().Destinations {
		data.Destinations = append(data.Destinations, destinationView(d))
	}
	h.render(w, http.StatusOK, "destinations", data)
}

// DestinationHandler renders a single destination
func (h *Handler) DestinationHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	cat := h.service.Catalog()
	d, ok := cat.Destination(slug)
	if !ok {
		h.logger.Debug("Destination not found", "slug", slug)
		h.NotFoundHandler(w, r)
		return
	}

	page, unmount := h.mount(d.Name, "/destinations", "hero", "amenities", "offers")
	defer unmount()

	data := DestinationPage{Page: page, Destination: destinationView(d)}
	for _, o := range cat.Offers {
		if o.Destination == "" || o.Destination == slug {
			data.Offers = append(data.Offers, o)
		}
	}
	h.render(w, http.StatusOK, "destination", data)
}

// OffersHandler renders the offers page
func (h *Handler) OffersHandler(w http.ResponseWriter, _ *http.Request) {
	page, unmount := h.mount("Offers", "/offers", "intro", "offers")
	defer unmount()

	h.render(w, http.StatusOK, "offers", OffersPage{Page: page, Offers: h.service.Catalog().Offers})
}

// LegalHandler renders a legal section
func (h *Handler) LegalHandler(w http.ResponseWriter, r *http.Request) {
	cat := h.service.Catalog()
	section, ok := cat.LegalSection(chi.URLParam(r, "section"))
	if !ok {
		h.NotFoundHandler(w, r)
		return
	}

	page, unmount := h.mount(section.Title, "")
	defer unmount()

	data := LegalPage{Page: page, Section: section}
	for _, l := range cat.Legal {
		data.Links = append(data.Links, NavLink{
			Label:  l.Title,
			URL:    "/legal/" + url.PathEscape(l.Slug),
			Active: l.Slug == section.Slug,
		})
	}
	h.render(w, http.StatusOK, "legal", data)
}

// NotFoundHandler renders the 404 page
func (h *Handler) NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	page, unmount := h.mount("Not found", "")
	defer unmount()

	h.render(w, http.StatusNotFound, "error", ErrorPage{
		Page:    page,
		Status:  http.StatusNotFound,
		Message: "We couldn't find that page.",
	})
}

func firstN[T any](s []T, n int) []T {
	if len(s) < n {
		return s
	}
	return s[:n]
}
