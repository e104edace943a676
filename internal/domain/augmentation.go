package domain

// ExtractedAttributes is the structured result of mining a free-text event
// description. Found is false when extraction did not run or failed; the
// pointers are only consulted when Found is true.
type ExtractedAttributes struct {
	Found     bool  `json:"-"`
	IsOutdoor *bool `json:"is_outdoor,omitempty"`
	AgeMin    *int  `json:"age_min,omitempty"`
	AgeMax    *int  `json:"age_max,omitempty"`
}

// Augmentation is the explicit outcome of the semantic query-time flow.
// Ran distinguishes "semantic search executed" from "degraded to rule-based",
// so downstream decisions branch on a value instead of an empty-map check.
type Augmentation struct {
	Ran          bool
	Extracted    ExtractedAttributes
	Similarities map[string]float64
}

// Effective merges structured query fields with extracted ones. Form fields
// always win; extraction only fills gaps.
func (a Augmentation) Effective(q QuoteRequest) QuoteRequest {
	if !a.Extracted.Found {
		return q
	}
	if q.IsOutdoor == nil {
		q.IsOutdoor = a.Extracted.IsOutdoor
	}
	if q.AgeMin == nil {
		q.AgeMin = a.Extracted.AgeMin
	}
	if q.AgeMax == nil {
		q.AgeMax = a.Extracted.AgeMax
	}
	return q
}
