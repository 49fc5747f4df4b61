package catalog

import (
	"sort"

	"github.com/bubbleflash/service-movers/internal/domain"
)

// ItemService describes one per-item shifting service (bike, fridge, sofa...)
// with its own base price. The base price covers the first 5 km; distance
// beyond that is charged through the banded schedule in pricing.go.
type ItemService struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Subtitle      string   `json:"subtitle"`
	BasePrice     float64  `json:"base_price"`
	DistanceRange string   `json:"distance_range"`
	Includes      []string `json:"includes"`
	NotIncludes   []string `json:"not_includes"`
	SortOrder     int      `json:"sort_order"`
}

// Catalog is an immutable lookup over the per-item shifting services,
// built once at startup and injected wherever item quotes are computed.
type Catalog struct {
	services []ItemService
	byID     map[string]ItemService
}

// categoryGroups maps a browsing category to the service IDs it contains.
var categoryGroups = map[string][]string{
	"vehicles":   {"bike-shifting", "scooty-shifting"},
	"appliances": {"fridge-shifting", "washing-machine-shifting", "tv-shifting"},
	"furniture":  {"sofa-shifting", "mattress-shifting", "cupboard-shifting", "table-shifting"},
}

// New builds a Catalog from the given services, ordered by SortOrder.
func New(services []ItemService) *Catalog {
	sorted := make([]ItemService, len(services))
	copy(sorted, services)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })

	byID := make(map[string]ItemService, len(sorted))
	for _, s := range sorted {
		byID[s.ID] = s
	}
	return &Catalog{services: sorted, byID: byID}
}

// All returns every service in display order.
func (c *Catalog) All() []ItemService {
	out := make([]ItemService, len(c.services))
	copy(out, c.services)
	return out
}

// Get returns the service with the given ID.
func (c *Catalog) Get(id string) (ItemService, error) {
	s, ok := c.byID[id]
	if !ok {
		return ItemService{}, domain.NewNotFoundError("Service", id)
	}
	return s, nil
}

// ByCategory returns the services in a browsing category. "all" or an
// unknown category returns the full catalog, matching the public listing.
func (c *Catalog) ByCategory(category string) []ItemService {
	ids, ok := categoryGroups[category]
	if !ok {
		return c.All()
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []ItemService
	for _, s := range c.services {
		if wanted[s.ID] {
			out = append(out, s)
		}
	}
	return out
}
