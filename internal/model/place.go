package model

// Place is one destination candidate loaded from the dataset.
type Place struct {
	City       string  `json:"city"`
	State      string  `json:"state"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Popularity float64 `json:"popularity"`
}

// ScoredPlace is a Place with the fields computed during one ranking run.
type ScoredPlace struct {
	Place
	DistanceKM     float64 `json:"distance_km"`
	RatingNorm     float64 `json:"rating_norm"`
	PopularityNorm float64 `json:"popularity_norm"`
	DistanceNorm   float64 `json:"distance_norm"`
	Score          float64 `json:"score"`
}

// Request is the caller-supplied configuration for one ranking run.
type Request struct {
	SourceCity    string  `json:"source_city"`
	TopN          int     `json:"top_n"`
	MaxDistanceKM float64 `json:"max_distance_km"`
	MinRating     float64 `json:"min_rating"`
}
