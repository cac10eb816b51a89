// Package catalog holds the immutable vendor catalog the scheduler reads
// from. A Catalog is built once at startup and never mutated, so it is safe
// for concurrent reads without locking.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/availability"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyName     = errors.New("vendor name is required")
	ErrDuplicateName = errors.New("duplicate vendor name")
	ErrNegativePrice = errors.New("vendor price must not be negative")
	ErrEmptyCatalog  = errors.New("catalog has no vendors")
)

type entry struct {
	vendor  models.Vendor
	pattern availability.WeeklyPattern
}

type Catalog struct {
	entries  map[string]entry
	names    []string
	patterns map[string]availability.WeeklyPattern
}

// New validates vendors and freezes them into a Catalog. Vendor slices are
// copied so later changes by the caller do not leak in.
func New(vendors []models.Vendor) (*Catalog, error) {
	if len(vendors) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries:  make(map[string]entry, len(vendors)),
		names:    make([]string, 0, len(vendors)),
		patterns: make(map[string]availability.WeeklyPattern, len(vendors)),
	}
	for _, v := range vendors {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := c.entries[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		if v.Price < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNegativePrice, name)
		}
		pattern, err := availability.NewPattern(v.AvailableDays...)
		if err != nil {
			return nil, fmt.Errorf("vendor %q: %w", name, err)
		}

		v.Name = name
		v.AvailableDays = pattern.Days()
		c.entries[name] = entry{vendor: v, pattern: pattern}
		c.names = append(c.names, name)
		c.patterns[name] = pattern
	}
	sort.Strings(c.names)
	return c, nil
}

func (c *Catalog) Get(name string) (models.Vendor, bool) {
	e, ok := c.entries[name]
	if !ok {
		return models.Vendor{}, false
	}
	return cloneVendor(e.vendor), true
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Names returns vendor names in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Vendors returns copies of every vendor, sorted by name.
func (c *Catalog) Vendors() []models.Vendor {
	out := make([]models.Vendor, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, cloneVendor(c.entries[name].vendor))
	}
	return out
}

// Patterns exposes the weekly patterns keyed by vendor name. The returned
// map is shared and must be treated as read-only.
func (c *Catalog) Patterns() map[string]availability.WeeklyPattern {
	return c.patterns
}

func (c *Catalog) Pattern(name string) (availability.WeeklyPattern, bool) {
	p, ok := c.patterns[name]
	return p, ok
}

// Missing returns the names not present in the catalog, in input order.
func (c *Catalog) Missing(names []string) []string {
	var missing []string
	for _, n := range names {
		if !c.Has(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// TotalPrice sums catalog prices for names. Unknown names contribute nothing;
// callers validate membership first.
func (c *Catalog) TotalPrice(names []string) float64 {
	var total float64
	for _, n := range names {
		total += c.entries[n].vendor.Price
	}
	return total
}

func (c *Catalog) Len() int {
	return len(c.names)
}

func cloneVendor(v models.Vendor) models.Vendor {
	v.AvailableDays = append([]int(nil), v.AvailableDays...)
	return v
}

// Default is the built-in marina catalog used when no other source is
// configured.
func Default() *Catalog {
	c, err := New([]models.Vendor{
		{Name: "Marina Launch Team", Service: "Dock Fee / Launch", Price: 100, AvailableDays: []int{0, 1, 2, 3, 4}},
		{Name: "Trucking Co", Service: "Cradle Transport", Price: 200, AvailableDays: []int{1, 2, 3, 4}},
		{Name: "Crane Co", Service: "Boat Lift", Price: 250, AvailableDays: []int{0, 2, 4}},
	})
	if err != nil {
		panic(err)
	}
	return c
}

type fileFormat struct {
	Vendors []models.Vendor `yaml:"vendors"`
}

// Parse reads a YAML catalog document:
//
//	vendors:
//	  - name: Crane Co
//	    service: Boat Lift
//	    price: 250
//	    available_days: [0, 2, 4]
func Parse(data []byte) (*Catalog, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(doc.Vendors)
}

func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
