package main

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCities_Table(t *testing.T) {
	stdout, _, err := execute(t, "", "cities")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Available Cities (45):")
	assert.Contains(t, stdout, "   Agra           Ahmedabad      Alibaug        Amritsar       Bangalore      \n")
}

func TestCities_CSV(t *testing.T) {
	stdout, _, err := execute(t, "", "cities", "--format", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 46)
	assert.Equal(t, []string{"name", "lat", "lon"}, records[0])
	assert.Equal(t, "Agra", records[1][0])
}

func TestCities_GeoJSON(t *testing.T) {
	stdout, _, err := execute(t, "", "cities", "--format", "geojson")
	require.NoError(t, err)

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 45)
	assert.Equal(t, "Point", doc.Features[0].Geometry.Type)
	assert.Equal(t, "Agra", doc.Features[0].Properties["name"])
}

func TestCities_ExtraRegistry(t *testing.T) {
	extra := filepath.Join(t.TempDir(), "cities.yaml")
	yaml := "cities:\n  - name: Ooty\n    lat: 11.4102\n    lon: 76.6950\n"
	require.NoError(t, os.WriteFile(extra, []byte(yaml), 0o644))
	t.Setenv("GETAWAY_REGISTRY_EXTRA_PATH", extra)

	stdout, _, err := execute(t, "", "cities")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Available Cities (46):")
	assert.Contains(t, stdout, "Ooty")
}

func TestCities_BadFormat(t *testing.T) {
	_, _, err := execute(t, "", "cities", "--format", "kml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--format must be table, csv or geojson")
}
