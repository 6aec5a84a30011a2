package registry

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// LoadFile reads additional cities from a YAML file of the form:
//
//	cities:
//	  - name: Ooty
//	    lat: 11.4102
//	    lon: 76.6950
func LoadFile(path string) ([]City, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "registry: read cities file %s", path)
	}

	var doc struct {
		Cities []City `yaml:"cities"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "registry: parse cities file")
	}

	return doc.Cities, nil
}

// FromConfig returns the built-in registry, extended with the cities in
// extraPath when it is non-empty.
func FromConfig(extraPath string) (*Registry, error) {
	base := Default()
	if extraPath == "" {
		return base, nil
	}

	extra, err := LoadFile(extraPath)
	if err != nil {
		return nil, err
	}
	return base.Extend(extra)
}
