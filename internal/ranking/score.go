package ranking

import (
	"fmt"
	"math"

	"github.com/dmuchance/bouncematch/internal/domain"
)

// ScoreResult is the outcome of scoring one candidate: the clamped integer
// score plus the human-readable justifications gathered along the way.
type ScoreResult struct {
	Score     int
	Reasons   []string
	Penalties []string
}

// ScoreCandidate computes the 0-100 score for one surviving candidate under
// the active profile. similarity is the semantic cosine similarity for this
// item when the vector search produced one, nil otherwise. The source record
// is never mutated.
func ScoreCandidate(cfg ScoringConfig, profile domain.SearchProfile, item *domain.Inflatable, tagsByID map[string]domain.Tag, q domain.QuoteRequest, similarity *float64) ScoreResult {
	var reasons, penalties []string

	// Baseline: semantic similarity when available, neutral constant otherwise
	score := float64(cfg.NeutralBaseline)
	if similarity != nil {
		score = *similarity * SimilarityBaselineScale
		if *similarity >= 0.5 {
			reasons = append(reasons, fmt.Sprintf("Trafne dopasowanie do opisu (+%d)", int(math.Round(score))))
		}
	}

	weights := cfg.Profiles[profile]

	// Tag contribution, clamped so tag count alone cannot dominate
	tagScore := 0
	for _, tagID := range item.TagIDs {
		tag, ok := tagsByID[tagID]
		if !ok {
			// Dangling tag reference: skip silently
			continue
		}
		key := tag.Key()
		if boost, ok := weights.Boosts[key]; ok {
			tagScore += boost
			reasons = append(reasons, fmt.Sprintf("%s (+%d)", tag.Name, boost))
		}
		if penalty, ok := weights.Penalties[key]; ok {
			tagScore += penalty
			penalties = append(penalties, fmt.Sprintf("%s (%d)", tag.Name, penalty))
		}
	}
	if tagScore < 0 {
		tagScore = 0
	}
	if tagScore > cfg.TagSubscoreMax {
		tagScore = cfg.TagSubscoreMax
	}
	score += float64(tagScore)

	// Age overlap bonus
	if q.AgeMin != nil && q.AgeMax != nil && item.HasAgeRange() {
		overlap := AgeOverlap(*q.AgeMin, *q.AgeMax, item.AgeMin, item.AgeMax)
		ageBonus := int(math.Round(overlap * float64(cfg.AgeBonusMax)))
		if ageBonus > 0 {
			score += float64(ageBonus)
			reasons = append(reasons, fmt.Sprintf("Idealny wiek (+%d)", ageBonus))
		}
	}

	// Profile-specific bonuses
	if profile == domain.ProfileFestival {
		if item.MaxCapacity != nil && *item.MaxCapacity > FestivalCapacityThreshold {
			score += FestivalCapacityBonus
			reasons = append(reasons, fmt.Sprintf("Wysoka pojemność (+%d)", FestivalCapacityBonus))
		}
		if item.SimultaneousCapacity != nil && *item.SimultaneousCapacity > FestivalThroughputThreshold {
			score += FestivalThroughputBonus
			reasons = append(reasons, fmt.Sprintf("Duża przepustowość (+%d)", FestivalThroughputBonus))
		}
	}
	if profile == domain.ProfileFestival || profile == domain.ProfileCorporate {
		if item.WowFactor != nil && *item.WowFactor >= WowFactorThreshold {
			score += WowFactorBonus
			reasons = append(reasons, fmt.Sprintf("Efekt wow (+%d)", WowFactorBonus))
		}
	}

	// Intensity match on the LOW/MEDIUM/HIGH ordinal scale
	if q.Intensity != nil && item.Intensity.Level() >= 0 {
		diff := q.Intensity.Level() - item.Intensity.Level()
		if diff < 0 {
			diff = -diff
		}
		switch diff {
		case 0:
			score += IntensityExactBonus
			reasons = append(reasons, fmt.Sprintf("Intensywność idealnie dopasowana (+%d)", IntensityExactBonus))
		case 1:
			score += IntensityAdjacentBonus
			reasons = append(reasons, fmt.Sprintf("Intensywność zbliżona (+%d)", IntensityAdjacentBonus))
		default:
			score += IntensityMismatchPenalty
			penalties = append(penalties, fmt.Sprintf("Niedopasowana intensywność (%d)", IntensityMismatchPenalty))
		}
	}

	// Competitiveness is only scored when the user asked for it
	if q.IsCompetitive != nil && *q.IsCompetitive {
		if item.IsCompetitive {
			score += CompetitiveMatchBonus
			reasons = append(reasons, fmt.Sprintf("Rywalizacja - zgodnie z oczekiwaniami (+%d)", CompetitiveMatchBonus))
		} else {
			score += CompetitiveMissPenalty
			penalties = append(penalties, fmt.Sprintf("Brak elementu rywalizacji (%d)", CompetitiveMissPenalty))
		}
	}

	// Declared event fitness
	if q.EventType != "" && fitnessIntersects(item.EventTypesFit, cfg.FitnessFor(q.EventType)) {
		score += EventFitnessBonus
		reasons = append(reasons, fmt.Sprintf("Pasuje do typu imprezy (+%d)", EventFitnessBonus))
	}

	final := int(math.Round(score))
	if final < ScoreMin {
		final = ScoreMin
	}
	if final > ScoreMax {
		final = ScoreMax
	}

	if len(reasons) > cfg.MaxReasons {
		reasons = reasons[:cfg.MaxReasons]
	}
	if len(penalties) > cfg.MaxPenalties {
		penalties = penalties[:cfg.MaxPenalties]
	}

	return ScoreResult{Score: final, Reasons: reasons, Penalties: penalties}
}

func fitnessIntersects(declared, wanted []domain.EventFitness) bool {
	for _, d := range declared {
		for _, w := range wanted {
			if d == w {
				return true
			}
		}
	}
	return false
}
