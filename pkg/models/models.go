package models

// Category is a gallery category tag
type Category string

// CategoryAll is the aggregate category that selects the whole collection
const CategoryAll Category = "All"

// IsAggregate reports whether c selects every item
func (c Category) IsAggregate() bool {
	return c == CategoryAll
}

// MediaItem represents a single gallery entry
type MediaItem struct {
	Title    string   `json:"title" yaml:"title"`
	Image    string   `json:"image" yaml:"image"`
	Category Category `json:"category" yaml:"category"`
}

// Brand holds the site-wide identity shown on every page
type Brand struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
}

// Destination represents one hotel of the brand
type Destination struct {
	Name        string        `json:"name" yaml:"name"`
	Slug        string        `json:"slug" yaml:"slug"`
	Location    string        `json:"location" yaml:"location"`
	Summary     string        `json:"summary" yaml:"summary"`
	Description string        `json:"description" yaml:"description"`
	Image       string        `json:"image" yaml:"image"`
	Rooms       int           `json:"rooms" yaml:"rooms"`
	Amenities   []AmenityKind `json:"amenities" yaml:"amenities"`
}

// Offer represents a seasonal package
type Offer struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Price       string `json:"price" yaml:"price"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// ClubTier is one level of the membership club
type ClubTier struct {
	Name     string   `json:"name" yaml:"name"`
	Price    string   `json:"price" yaml:"price"`
	Benefits []string `json:"benefits" yaml:"benefits"`
}

// LegalSection is a legal page such as privacy or terms
type LegalSection struct {
	Slug       string   `json:"slug" yaml:"slug"`
	Title      string   `json:"title" yaml:"title"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
}
