package ranking

import "github.com/dmuchance/bouncematch/internal/domain"

// ProfileWeights holds the tag boost and penalty tables for one search
// profile, keyed by the tag's "GROUP:name" composite key.
type ProfileWeights struct {
	Boosts    map[string]int
	Penalties map[string]int
}

// ScoringConfig is the full, immutable weight configuration for the scoring
// engine. It is constructed once at startup and injected; the engine never
// reads ambient globals, so tests can run divergent configs in parallel.
type ScoringConfig struct {
	Profiles map[domain.SearchProfile]ProfileWeights

	// NeutralBaseline is used when no semantic similarity exists for an
	// item. Tunable; the semantic baseline band is 0-50 (similarity*50).
	NeutralBaseline int

	// TagSubscoreMax caps the summed tag contribution so an item with many
	// matching tags cannot dominate on tag count alone.
	TagSubscoreMax int

	AgeBonusMax int

	MaxReasons   int
	MaxPenalties int

	// EventFitness translates UI event types into the fitness categories
	// declared on items. corporate_picnic maps to two categories.
	EventFitness map[string][]domain.EventFitness
}

// DefaultScoringConfig returns the production weight tables.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		NeutralBaseline: 25,
		TagSubscoreMax:  40,
		AgeBonusMax:     20,
		MaxReasons:      4,
		MaxPenalties:    2,
		Profiles: map[domain.SearchProfile]ProfileWeights{
			domain.ProfilePreschool: {
				Boosts: map[string]int{
					"EVENT:przedszkole":       40,
					"AGE:dla maluchów (2-4)":  35,
					"AGE:przedszkole (3-6)":   35,
					"INTENT:spokojne":         15,
					"MECHANIC:zamek":          10,
					"THEME:kolorowy":          5,
				},
				Penalties: map[string]int{
					"MECHANIC:tor przeszkód":      -25,
					"AGE:starszaki (10-14)":       -35,
					"AGE:młodzież/dorośli":        -35,
					"INTENT:hardcore/rywalizacja": -20,
					"INTENT:rywalizacja":          -15,
				},
			},
			domain.ProfileSchool: {
				Boosts: map[string]int{
					"EVENT:szkoła/półkolonie": 30,
					"AGE:szkoła (6-10)":       25,
					"MECHANIC:tor przeszkód":  10,
					"MECHANIC:zjeżdżalnia":    8,
					"INTENT:średnie":          10,
					"INTENT:rywalizacja":      5,
				},
				Penalties: map[string]int{
					"AGE:dla maluchów (2-4)": -10,
					"INTENT:spokojne":        -5,
				},
			},
			domain.ProfileBirthday: {
				Boosts: map[string]int{
					"EVENT:urodziny":           25,
					"MECHANIC:zjeżdżalnia":     10,
					"MECHANIC:zamek":           8,
					"INTENT:wow/premium":       8,
					"MECHANIC:2w1":             7,
					"MECHANIC:multi-atrakcja":  7,
				},
				Penalties: map[string]int{},
			},
			domain.ProfileFestival: {
				Boosts: map[string]int{
					"EVENT:festyn/piknik":     30,
					"MECHANIC:multi-atrakcja": 15,
					"INTENT:wow/premium":      10,
					"MECHANIC:tor przeszkód":  8,
					"MECHANIC:zjeżdżalnia":    8,
				},
				Penalties: map[string]int{},
			},
			domain.ProfileCorporate: {
				Boosts: map[string]int{
					"EVENT:event firmowy":     35,
					"MECHANIC:multi-atrakcja": 12,
					"MECHANIC:tor przeszkód":  10,
					"INTENT:rywalizacja":      10,
					"INTENT:wow/premium":      8,
				},
				Penalties: map[string]int{
					"AGE:dla maluchów (2-4)": -20,
				},
			},
		},
		EventFitness: map[string][]domain.EventFitness{
			"birthday":         {domain.FitBirthday},
			"przedszkole":      {domain.FitPreschool},
			"school_event":     {domain.FitSchool},
			"festival":         {domain.FitFestival},
			"corporate_event":  {domain.FitCorporate},
			"corporate_picnic": {domain.FitCorporate, domain.FitFestival},
			"communion":        {domain.FitCommunion, domain.FitBirthday},
			"wedding":          {domain.FitWedding, domain.FitBirthday},
		},
	}
}

// FitnessFor returns the fitness categories mapped to a UI event type.
func (c ScoringConfig) FitnessFor(eventType string) []domain.EventFitness {
	return c.EventFitness[eventType]
}
