package handlers

import (
	"net/url"

	"hotel-site/pkg/gallery"
	"hotel-site/pkg/models"
	"hotel-site/pkg/reveal"
)

// NavLink is an entry of the main navigation
type NavLink struct {
	Label  string
	URL    string
	Active bool
}

// Page carries what the layout needs on every page
type Page struct {
	Brand  models.Brand
	Title  string
	Nav    []NavLink
	Reveal []reveal.Region
	// NoScroll freezes the page behind an open lightbox
	NoScroll bool
}

// BodyClass is the class list of the body element
func (p Page) BodyClass() string {
	if p.NoScroll {
		return "no-scroll"
	}
	return ""
}

// AmenityView is an amenity with its resolved label and icon
type AmenityView struct {
	Label string
	Icon  string
}

// DestinationView is a destination ready for rendering
type DestinationView struct {
	models.Destination
	URL          string
	ContactURL   string
	AmenityViews []AmenityView
}

// HomePage is the data of the home page
type HomePage struct {
	Page
	Destinations []DestinationView
	Offers       []models.Offer
	Highlights   []GalleryTile
}

// DestinationsPage lists every destination
type DestinationsPage struct {
	Page
	Destinations []DestinationView
}

// DestinationPage shows one destination and its offers
type DestinationPage struct {
	Page
	Destination DestinationView
	Offers      []models.Offer
}

// FilterLink is one button of the gallery filter selector
type FilterLink struct {
	Category models.Category
	Count    int
	URL      string
	Active   bool
}

// GalleryTile is one item of the gallery grid
type GalleryTile struct {
	models.MediaItem
	URL string
}

// LightboxView is the modal viewer for the open item
type LightboxView struct {
	Item     models.MediaItem
	Position int
	Total    int
	Filter   models.Category
	PrevURL  string
	NextURL  string
	CloseURL string
	// ActionURL receives the keyboard and button controls
	ActionURL string
	Grid      models.Category
}

// GalleryPage is the gallery grid, optionally with the lightbox open
type GalleryPage struct {
	Page
	Filters    []FilterLink
	Active     models.Category
	Generation int
	Tiles      []GalleryTile
	Lightbox   *LightboxView
}

// OffersPage lists the offers
type OffersPage struct {
	Page
	Offers []models.Offer
}

// FormView holds a form's submitted values and the outcome
type FormView struct {
	Values    map[string]string
	Errors    map[string]string
	Reference string
}

// ClubPage shows the membership tiers and the sign-up form
type ClubPage struct {
	Page
	Tiers []models.ClubTier
	Form  FormView
}

// ContactPage shows the contact form
type ContactPage struct {
	Page
	Form FormView
}

// LegalPage shows one legal section
type LegalPage struct {
	Page
	Section models.LegalSection
	Links   []NavLink
}

// ErrorPage is rendered for 404 and similar
type ErrorPage struct {
	Page
	Status  int
	Message string
}

func destinationView(d models.Destination) DestinationView {
	v := DestinationView{
		Destination: d,
		URL:         "/destinations/" + url.PathEscape(d.Slug),
		ContactURL:  "/contact?" + url.Values{"destination": {d.Slug}}.Encode(),
	}
	for _, a := range d.Amenities {
		v.AmenityViews = append(v.AmenityViews, AmenityView{Label: a.Label(), Icon: a.Icon()})
	}
	return v
}

func galleryURL(filter models.Category) string {
	if filter == "" || filter.IsAggregate() {
		return "/gallery"
	}
	return "/gallery?" + url.Values{"filter": {string(filter)}}.Encode()
}

func lightboxURL(filter models.Category, title string, grid models.Category) string {
	v := url.Values{"item": {title}}
	if filter != "" && !filter.IsAggregate() {
		v.Set("filter", string(filter))
	}
	if grid != "" && grid != filter {
		v.Set("grid", string(grid))
	}
	return "/gallery/view?" + v.Encode()
}

func tiles(items []models.MediaItem, filter models.Category) []GalleryTile {
	out := make([]GalleryTile, 0, len(items))
	for _, item := range items {
		out = append(out, GalleryTile{MediaItem: item, URL: lightboxURL(filter, item.Title, "")})
	}
	return out
}

// lightboxView describes the open lightbox of st, or nil when it is closed
func lightboxView(st *gallery.State) *LightboxView {
	item, ok := st.Current()
	if !ok {
		return nil
	}
	pos, total, ok := st.Position()
	if !ok {
		return nil
	}
	prev, next, _ := st.Neighbours()
	filter := st.LightboxFilter()
	grid := st.ActiveFilter()

	return &LightboxView{
		Item:      item,
		Position:  pos,
		Total:     total,
		Filter:    filter,
		Grid:      grid,
		PrevURL:   lightboxURL(filter, prev.Title, grid),
		NextURL:   lightboxURL(filter, next.Title, grid),
		CloseURL:  galleryURL(grid),
		ActionURL: "/gallery/view",
	}
}
