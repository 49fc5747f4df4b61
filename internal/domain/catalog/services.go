package catalog

// DefaultServices returns the per-item shifting price list. Base prices
// cover the 0-5 km radius.
func DefaultServices() []ItemService {
	return []ItemService{
		{
			ID:            "bike-shifting",
			Name:          "Bike Shifting",
			Category:      "vehicles",
			Subtitle:      "Local",
			BasePrice:     1299,
			DistanceRange: "0-5 km",
			Includes:      []string{"Foam sheet packing", "Bubble wrap", "Tank & handle protection", "Rope lock inside vehicle", "Loading + transport + unloading"},
			NotIncludes:   []string{"Bike repair", "Fuel refill", "Mechanical issues"},
			SortOrder:     1,
		},
		{
			ID:            "scooty-shifting",
			Name:          "Scooty Shifting",
			Category:      "vehicles",
			Subtitle:      "Local",
			BasePrice:     1199,
			DistanceRange: "0-5 km",
			Includes:      []string{"Full wrap packing", "Side panel protection", "Loading + unloading", "Mini-truck transport"},
			NotIncludes:   []string{"Dent removal", "Electrical issues"},
			SortOrder:     2,
		},
		{
			ID:            "fridge-shifting",
			Name:          "Fridge Shifting",
			Category:      "appliances",
			Subtitle:      "Single/Double Door",
			BasePrice:     1899,
			DistanceRange: "0-5 km",
			Includes:      []string{"Bubble + stretch wrap", "Upright transport only", "2-3 helpers", "Placement in kitchen"},
			NotIncludes:   []string{"Gas refill", "Cooling repair"},
			SortOrder:     3,
		},
		{
			ID:            "washing-machine-shifting",
			Name:          "Washing Machine Shifting",
			Category:      "appliances",
			Subtitle:      "All Types",
			BasePrice:     1299,
			DistanceRange: "0-5 km",
			Includes:      []string{"Foam wrap", "Drum lock", "Transport", "Loading + unloading"},
			NotIncludes:   []string{"Pipe installation", "Machine repair"},
			SortOrder:     4,
		},
		{
			ID:            "sofa-shifting",
			Name:          "Sofa Shifting",
			Category:      "furniture",
			Subtitle:      "3-5 Seater",
			BasePrice:     2299,
			DistanceRange: "0-5 km",
			Includes:      []string{"Bubble wrap + foam", "Corner protection", "Manual lifting", "Door-to-door transport"},
			NotIncludes:   []string{"Sofa repair", "Dismantling (extra)"},
			SortOrder:     5,
		},
		{
			ID:            "tv-shifting",
			Name:          "TV Shifting",
			Category:      "appliances",
			Subtitle:      "LED/Smart TV",
			BasePrice:     899,
			DistanceRange: "0-5 km",
			Includes:      []string{"Bubble wrap", "Screen protection sheet", "Cardboard frame", "Transport"},
			NotIncludes:   []string{"Wall mounting", "Screen replacement"},
			SortOrder:     6,
		},
		{
			ID:            "mattress-shifting",
			Name:          "Mattress Shifting",
			Category:      "furniture",
			Subtitle:      "Single/Double/Queen/King",
			BasePrice:     699,
			DistanceRange: "0-5 km",
			Includes:      []string{"Mattress cover / plastic wrap", "Transport", "Loading + unloading"},
			NotIncludes:   []string{"Mattress cleaning", "Mold treatment"},
			SortOrder:     7,
		},
		{
			ID:            "cupboard-shifting",
			Name:          "Cupboard Shifting",
			Category:      "furniture",
			Subtitle:      "Steel/Wooden",
			BasePrice:     1499,
			DistanceRange: "0-5 km",
			Includes:      []string{"Full wrap", "Shelf taping", "Lifting & loading", "Transport", "Unloading"},
			NotIncludes:   []string{"Inside item packing", "Door repair"},
			SortOrder:     8,
		},
		{
			ID:            "table-shifting",
			Name:          "Table Shifting",
			Category:      "furniture",
			Subtitle:      "Office / Dining / Study",
			BasePrice:     799,
			DistanceRange: "0-5 km",
			Includes:      []string{"Table wrap", "Edge protection", "Transport", "Loading + unloading"},
			NotIncludes:   []string{"Table repair", "Disassembling (extra)"},
			SortOrder:     9,
		},
	}
}
