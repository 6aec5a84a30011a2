// Package registry maps city names to their coordinates.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"

	"github.com/sells-group/getaway-cli/internal/geo"
)

// City is a named location with its coordinate.
type City struct {
	Name  string         `json:"name" yaml:"name"`
	Coord geo.Coordinate `json:"coord" yaml:",inline"`
}

// Registry is an immutable, indexed collection of cities. Lookups are
// case-insensitive and ignore surrounding whitespace.
type Registry struct {
	cities []City
	byKey  map[string]int
}

// Key returns the normalized lookup key for a city name.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameCity reports whether two city names refer to the same registry key.
func SameCity(a, b string) bool {
	return Key(a) == Key(b)
}

// New builds a Registry. Every coordinate must be in range and no two
// cities may share a key.
func New(cities []City) (*Registry, error) {
	r := &Registry{
		cities: make([]City, 0, len(cities)),
		byKey:  make(map[string]int, len(cities)),
	}
	for _, c := range cities {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, eris.New("registry: city with empty name")
		}
		if err := c.Coord.Validate(); err != nil {
			return nil, eris.Wrapf(err, "registry: city %q", name)
		}
		key := Key(name)
		if _, dup := r.byKey[key]; dup {
			return nil, eris.Errorf("registry: duplicate city %q", name)
		}
		r.byKey[key] = len(r.cities)
		r.cities = append(r.cities, City{Name: name, Coord: c.Coord})
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := New(builtinCities)
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the built-in registry. It is constructed once and shared.
func Default() *Registry {
	return defaultRegistry()
}

// Lookup returns the city registered under name, if any.
func (r *Registry) Lookup(name string) (City, bool) {
	i, ok := r.byKey[Key(name)]
	if !ok {
		return City{}, false
	}
	return r.cities[i], true
}

// Len returns the number of registered cities.
func (r *Registry) Len() int {
	return len(r.cities)
}

// Names returns the registered city names in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.cities))
	for i, c := range r.cities {
		names[i] = c.Name
	}
	sort.Strings(names)
	return names
}

// Cities returns a copy of the registered cities in insertion order.
func (r *Registry) Cities() []City {
	out := make([]City, len(r.cities))
	copy(out, r.cities)
	return out
}

// Extend returns a new Registry holding r's cities followed by extra.
// r is left unchanged.
func (r *Registry) Extend(extra []City) (*Registry, error) {
	all := make([]City, 0, len(r.cities)+len(extra))
	all = append(all, r.cities...)
	all = append(all, extra...)
	return New(all)
}
