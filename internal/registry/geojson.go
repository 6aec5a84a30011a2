package registry

import (
	"encoding/json"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// GeoJSON renders the registry as a FeatureCollection of points, ordered by name.
func (r *Registry) GeoJSON() ([]byte, error) {
	cities := r.Cities()
	sort.Slice(cities, func(i, j int) bool { return cities[i].Name < cities[j].Name })

	fc := geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(cities)),
	}
	for _, c := range cities {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       Key(c.Name),
			Geometry: c.Coord.Point(),
			Properties: map[string]interface{}{
				"name": c.Name,
			},
		})
	}

	data, err := json.Marshal(&fc)
	if err != nil {
		return nil, eris.Wrap(err, "registry: encode geojson")
	}
	return data, nil
}
