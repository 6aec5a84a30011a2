// Package scorer ranks destination candidates by a weighted composite of
// rating, popularity and proximity.
package scorer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/getaway-cli/internal/geo"
	"github.com/sells-group/getaway-cli/internal/model"
	"github.com/sells-group/getaway-cli/internal/registry"
)

// Component weights (sum = 1.0).
const (
	RatingWeight     = 0.4
	PopularityWeight = 0.3
	DistanceWeight   = 0.3
)

var (
	// ErrUnknownCity is returned when the source city is not in the registry.
	ErrUnknownCity = eris.New("unknown city")
	// ErrInvalidRequest is returned for a request that cannot be ranked.
	ErrInvalidRequest = eris.New("invalid ranking request")
)

// Locator resolves city names to coordinates.
type Locator interface {
	Lookup(name string) (registry.City, bool)
}

// Engine ranks places for a source city.
type Engine struct {
	locator Locator
	method  geo.Method
}

// NewEngine creates an Engine. An empty method selects haversine.
func NewEngine(locator Locator, method geo.Method) *Engine {
	if method == "" {
		method = geo.MethodHaversine
	}
	return &Engine{locator: locator, method: method}
}

// ValidateRequest checks that a Request can be ranked.
func ValidateRequest(req model.Request) error {
	var errs []string
	if strings.TrimSpace(req.SourceCity) == "" {
		errs = append(errs, "source city is required")
	}
	if req.TopN <= 0 {
		errs = append(errs, fmt.Sprintf("top_n must be > 0 (got %d)", req.TopN))
	}
	if req.MaxDistanceKM <= 0 {
		errs = append(errs, fmt.Sprintf("max_distance_km must be > 0 (got %v)", req.MaxDistanceKM))
	}
	if len(errs) > 0 {
		return eris.Wrap(ErrInvalidRequest, strings.Join(errs, "; "))
	}
	return nil
}

// Recommend filters, scores and ranks places for req.
//
// The returned ResultSet has outcome ranked or no_matches; an unknown source
// city yields ErrUnknownCity and a nil ResultSet.
func (e *Engine) Recommend(req model.Request, places []model.Place) (*model.ResultSet, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	src, ok := e.locator.Lookup(req.SourceCity)
	if !ok {
		return nil, eris.Wrapf(ErrUnknownCity, "scorer: %q", strings.TrimSpace(req.SourceCity))
	}

	log := zap.L().With(zap.String("component", "scorer"), zap.String("source", src.Name))

	rs := &model.ResultSet{
		Source:  src.Name,
		Request: req,
		Stats:   model.Stats{Loaded: len(places)},
	}

	candidates := make([]model.ScoredPlace, 0, len(places))
	for _, p := range places {
		if registry.SameCity(p.City, src.Name) {
			rs.Stats.SelfExcluded++
			continue
		}

		dest, ok := e.locator.Lookup(p.City)
		if !ok {
			rs.Stats.Unresolved++
			log.Debug("scorer: dropping place with unknown city",
				zap.String("city", p.City),
				zap.String("name", p.Name),
			)
			continue
		}

		dist := geo.RoundKM(geo.Distance(e.method, src.Coord, dest.Coord))
		if dist > req.MaxDistanceKM || p.Rating < req.MinRating {
			rs.Stats.FilteredOut++
			continue
		}

		candidates = append(candidates, model.ScoredPlace{Place: p, DistanceKM: dist})
	}
	rs.Stats.Candidates = len(candidates)

	if len(candidates) == 0 {
		rs.Outcome = model.OutcomeNoMatches
		rs.Places = []model.ScoredPlace{}
		log.Info("scorer: no destinations matched",
			zap.Int("loaded", rs.Stats.Loaded),
			zap.Int("unresolved", rs.Stats.Unresolved),
			zap.Int("filtered_out", rs.Stats.FilteredOut),
		)
		return rs, nil
	}

	scoreCandidates(candidates)
	sortByScore(candidates)

	if len(candidates) > req.TopN {
		candidates = candidates[:req.TopN]
	}
	rs.Outcome = model.OutcomeRanked
	rs.Places = candidates

	log.Info("scorer: ranking complete",
		zap.Int("candidates", rs.Stats.Candidates),
		zap.Int("returned", len(rs.Places)),
	)
	return rs, nil
}

// scoreCandidates normalizes each signal against the maximum of the set and
// fills in the composite score.
func scoreCandidates(places []model.ScoredPlace) {
	var maxRating, maxPopularity, maxDistance float64
	for _, p := range places {
		maxRating = max(maxRating, p.Rating)
		maxPopularity = max(maxPopularity, p.Popularity)
		maxDistance = max(maxDistance, p.DistanceKM)
	}

	for i := range places {
		p := &places[i]
		p.RatingNorm = ratio(p.Rating, maxRating)
		p.PopularityNorm = ratio(p.Popularity, maxPopularity)
		p.DistanceNorm = 1 - ratio(p.DistanceKM, maxDistance)
		p.Score = RatingWeight*p.RatingNorm +
			PopularityWeight*p.PopularityNorm +
			DistanceWeight*p.DistanceNorm
	}
}

// ratio returns v/maxV, or 0 when the maximum is not positive.
func ratio(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return v / maxV
}

// sortByScore orders places by descending score. Equal scores keep their
// dataset order.
func sortByScore(places []model.ScoredPlace) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Score > places[j].Score
	})
}
