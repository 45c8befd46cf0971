package catalog

import "hotel-site/pkg/models"

const imageHost = "https://images.unsplash.com/"

func img(id string) string {
	return imageHost + id + "?auto=format&fit=crop&w=1600&q=80"
}

// Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{
		Brand: models.Brand{
			Name:    "Maison Sel",
			Tagline: "Small hotels by the sea, kept slow on purpose.",
			Email:   "hello@maisonsel.com",
			Phone:   "+33 4 90 00 00 00",
		},
		Destinations: []models.Destination{
			{
				Name:        "Maison Sel Camargue",
				Slug:        "camargue",
				Location:    "Saintes-Maries-de-la-Mer, France",
				Summary:     "Twelve whitewashed rooms between the salt flats and the sea.",
				Description: "A former salt merchant's house turned into twelve rooms, a courtyard pool and a kitchen that cooks what the marsh and the boats bring in.",
				Image:       img("photo-1566073771259-6a8506099945"),
				Rooms:       12,
				Amenities: []models.AmenityKind{
					models.AmenityPool, models.AmenityRestaurant, models.AmenityGarden, models.AmenityWifi,
				},
			},
			{
				Name:        "Maison Sel Ischia",
				Slug:        "ischia",
				Location:    "Sant'Angelo, Ischia, Italy",
				Summary:     "Terraced suites above a fishing harbour and thermal springs.",
				Description: "Nineteen suites stepping down the cliff to a private cove, with thermal pools fed by the island's springs and a bar that opens at sunset.",
				Image:       img("photo-1551882547-ff40c63fe5fa"),
				Rooms:       19,
				Amenities: []models.AmenityKind{
					models.AmenitySpa, models.AmenityBeach, models.AmenityBar, models.AmenityConcierge,
				},
			},
			{
				Name:        "Maison Sel Comporta",
				Slug:        "comporta",
				Location:    "Comporta, Portugal",
				Summary:     "Thatched cabins in the rice fields, ten minutes from the dunes.",
				Description: "Cabins built the old way with reed roofs, scattered through pine and rice fields, with bikes, a lap pool and a long table dinner every Friday.",
				Image:       img("photo-1520250497591-112f2f40a3f4"),
				Rooms:       14,
				Amenities: []models.AmenityKind{
					models.AmenityPool, models.AmenityGym, models.AmenityParking, models.AmenityRestaurant,
				},
			},
		},
		Categories: []models.Category{"Bedroom", "Terrace", "Lifestyle", "Dining"},
		Gallery: []models.MediaItem{
			{Title: "Salt Room", Image: img("photo-1590490360182-c33d57733427"), Category: "Bedroom"},
			{Title: "Courtyard Pool", Image: img("photo-1571896349842-33c89424de2d"), Category: "Terrace"},
			{Title: "Morning Market", Image: img("photo-1488459716781-31db52582fe9"), Category: "Lifestyle"},
			{Title: "Harbour Suite", Image: img("photo-1582719478250-c89cae4dc85b"), Category: "Bedroom"},
			{Title: "Cliff Terrace", Image: img("photo-1540541338287-41700207dee6"), Category: "Terrace"},
			{Title: "Long Table", Image: img("photo-1414235077428-338989a2e8c0"), Category: "Dining"},
			{Title: "Thermal Pool", Image: img("photo-1544161515-4ab6ce6db874"), Category: "Lifestyle"},
			{Title: "Reed Cabin", Image: img("photo-1596394516093-501ba68a0ba6"), Category: "Bedroom"},
			{Title: "Sunset Bar", Image: img("photo-1514362545857-3bc16c4c7d1b"), Category: "Dining"},
			{Title: "Dune Deck", Image: img("photo-1507525428034-b723cf961d3e"), Category: "Terrace"},
			{Title: "Bikes at Dawn", Image: img("photo-1485965120184-e220f721d03e"), Category: "Lifestyle"},
			{Title: "Garden Breakfast", Image: img("photo-1533089860892-a7c6f0a88666"), Category: "Dining"},
		},
		Offers: []models.Offer{
			{
				Title:       "Stay Longer",
				Description: "Fourth night on us at every house, all year.",
				Image:       img("photo-1445019980597-93fa8acb246c"),
				Price:       "from €690",
			},
			{
				Title:       "Thermal Weekend",
				Description: "Two nights, daily thermal circuit and a massage for two.",
				Image:       img("photo-1540555700478-4be289fbecef"),
				Price:       "from €820",
				Destination: "ischia",
			},
			{
				Title:       "Rice Harvest Table",
				Description: "Three nights in September with the Friday harvest dinner.",
				Image:       img("photo-1559339352-11d035aa65de"),
				Price:       "from €1,040",
				Destination: "comporta",
			},
		},
		ClubTiers: []models.ClubTier{
			{Name: "Friend", Price: "Free", Benefits: []string{"Member rates", "Late checkout on request"}},
			{Name: "Regular", Price: "€190 / year", Benefits: []string{"Member rates", "Guaranteed late checkout", "Welcome dinner"}},
			{Name: "Family", Price: "€480 / year", Benefits: []string{"Member rates", "Room upgrades", "Priority summer booking", "Guest passes"}},
		},
		Legal: []models.LegalSection{
			{
				Slug:  "privacy",
				Title: "Privacy Policy",
				Paragraphs: []string{
					"We collect only what you type into our forms, and this site does not store it.",
					"Images are served from third-party image hosts that may log requests.",
				},
			},
			{
				Slug:  "terms",
				Title: "Terms of Use",
				Paragraphs: []string{
					"Content on this site is provided for information and may change without notice.",
					"Offers are indicative and confirmed only by a booking made with the hotel.",
				},
			},
			{
				Slug:  "imprint",
				Title: "Imprint",
				Paragraphs: []string{
					"Maison Sel SAS, Saintes-Maries-de-la-Mer, France.",
				},
			},
		},
	}
}
