package models

import (
	"fmt"
	"strings"
)

// AmenityKind enumerates the amenities a destination can advertise
type AmenityKind int

const (
	AmenityUnknown AmenityKind = iota
	AmenitySpa
	AmenityPool
	AmenityRestaurant
	AmenityBar
	AmenityGym
	AmenityWifi
	AmenityBeach
	AmenityGarden
	AmenityConcierge
	AmenityParking
)

// DefaultAmenityIcon is shown for any amenity without a dedicated icon
const DefaultAmenityIcon = "lucide:sparkles"

var amenityNames = map[AmenityKind]string{
	AmenitySpa:        "spa",
	AmenityPool:       "pool",
	AmenityRestaurant: "restaurant",
	AmenityBar:        "bar",
	AmenityGym:        "gym",
	AmenityWifi:       "wifi",
	AmenityBeach:      "beach",
	AmenityGarden:     "garden",
	AmenityConcierge:  "concierge",
	AmenityParking:    "parking",
}

// ParseAmenityKind maps a name such as "spa" to its AmenityKind
func ParseAmenityKind(name string) (AmenityKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range amenityNames {
		if n == name {
			return kind, nil
		}
	}
	return AmenityUnknown, fmt.Errorf("unknown amenity: %q", name)
}

// String returns the amenity name
func (k AmenityKind) String() string {
	if n, ok := amenityNames[k]; ok {
		return n
	}
	return "unknown"
}

// Label returns the display label
func (k AmenityKind) Label() string {
	switch k {
	case AmenitySpa:
		return "Spa & Wellness"
	case AmenityPool:
		return "Pool"
	case AmenityRestaurant:
		return "Restaurant"
	case AmenityBar:
		return "Cocktail Bar"
	case AmenityGym:
		return "Fitness Studio"
	case AmenityWifi:
		return "Fast Wi-Fi"
	case AmenityBeach:
		return "Private Beach"
	case AmenityGarden:
		return "Gardens"
	case AmenityConcierge:
		return "Concierge"
	case AmenityParking:
		return "Valet Parking"
	default:
		return "Amenity"
	}
}

// Icon returns the icon key for the amenity
func (k AmenityKind) Icon() string {
	switch k {
	case AmenitySpa:
		return "lucide:flower-2"
	case AmenityPool:
		return "lucide:waves"
	case AmenityRestaurant:
		return "lucide:utensils"
	case AmenityBar:
		return "lucide:wine"
	case AmenityGym:
		return "lucide:dumbbell"
	case AmenityWifi:
		return "lucide:wifi"
	case AmenityBeach:
		return "lucide:umbrella"
	case AmenityGarden:
		return "lucide:trees"
	case AmenityConcierge:
		return "lucide:bell-ring"
	case AmenityParking:
		return "lucide:car"
	default:
		return DefaultAmenityIcon
	}
}

// MarshalText encodes the amenity by name
func (k AmenityKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes an amenity name, used by both the JSON and YAML decoders
func (k *AmenityKind) UnmarshalText(text []byte) error {
	kind, err := ParseAmenityKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
