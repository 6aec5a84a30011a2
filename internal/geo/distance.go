// Package geo provides coordinates and great-circle distance between them.
package geo

import (
	"math"
	"strings"

	"github.com/jftuga/geodist"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// EarthRadiusKM is the mean Earth radius used by Haversine.
const EarthRadiusKM = 6371.0

// Distance methods.
const (
	MethodHaversine Method = "haversine"
	MethodVincenty  Method = "vincenty"
)

// Method selects the distance formula.
type Method string

// ParseMethod returns the Method named by s. An empty string selects haversine.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case "", MethodHaversine:
		return MethodHaversine, nil
	case MethodVincenty:
		return MethodVincenty, nil
	default:
		return "", eris.Errorf("geo: unknown distance method %q", s)
	}
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Validate checks that the coordinate lies within [-90,90] x [-180,180].
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return eris.Errorf("geo: latitude %v out of range [-90, 90]", c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return eris.Errorf("geo: longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// Point returns the coordinate as an XY point (x = longitude, y = latitude).
func (c Coordinate) Point() *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{c.Lon, c.Lat})
}

// Haversine returns the great-circle distance between a and b in kilometers.
// The result is not rounded.
func Haversine(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := lat2 - lat1
	dLon := radians(b.Lon) - radians(a.Lon)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)

	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(h))
}

// Vincenty returns the ellipsoidal (WGS-84) distance between a and b in kilometers.
func Vincenty(a, b Coordinate) (float64, error) {
	if a == b {
		return 0, nil
	}
	_, km, err := geodist.VincentyDistance(
		geodist.Coord{Lat: a.Lat, Lon: a.Lon},
		geodist.Coord{Lat: b.Lat, Lon: b.Lon},
	)
	if err != nil {
		return 0, eris.Wrap(err, "geo: vincenty distance")
	}
	return km, nil
}

// Distance returns the distance in kilometers using the given method.
// Vincenty falls back to Haversine for pairs where it does not converge.
func Distance(method Method, a, b Coordinate) float64 {
	if method != MethodVincenty {
		return Haversine(a, b)
	}
	km, err := Vincenty(a, b)
	if err != nil {
		zap.L().Debug("geo: vincenty failed, using haversine",
			zap.Float64("lat1", a.Lat), zap.Float64("lon1", a.Lon),
			zap.Float64("lat2", b.Lat), zap.Float64("lon2", b.Lon),
			zap.Error(err),
		)
		return Haversine(a, b)
	}
	return km
}

// RoundKM rounds a distance to two decimal places.
func RoundKM(km float64) float64 {
	return math.Round(km*100) / 100
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
