package ranking

import "github.com/dmuchance/bouncematch/internal/domain"

// HardFilter removes items that cannot possibly satisfy the query's
// non-negotiable constraints. Each rule passes independently when its inputs
// are absent; only definite conflicts exclude. When the semantic search
// produced hits, candidates are additionally restricted to those hits - an
// item the embedding search found no relevance for is not surfaced just
// because the rule checks are neutral on it. Zero hits fail open.
func HardFilter(items []domain.Inflatable, q domain.QuoteRequest, semanticHits map[string]float64) []domain.Inflatable {
	var out []domain.Inflatable
	for _, item := range items {
		if !passesHardFilter(&item, q) {
			continue
		}
		if len(semanticHits) > 0 {
			if _, hit := semanticHits[item.ID]; !hit {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

func passesHardFilter(item *domain.Inflatable, q domain.QuoteRequest) bool {
	// Age: exclude only on provably disjoint ranges
	if q.AgeMin != nil && q.AgeMax != nil && item.HasAgeRange() {
		if AgeOverlap(*q.AgeMin, *q.AgeMax, item.AgeMin, item.AgeMax) == 0 {
			return false
		}
	}

	// Space: the item's minimum footprint must fit the offered area
	if q.SpaceLength != nil && q.SpaceWidth != nil {
		if item.MinSpaceLength != nil && *item.MinSpaceLength > *q.SpaceLength {
			return false
		}
		if item.MinSpaceWidth != nil && *item.MinSpaceWidth > *q.SpaceWidth {
			return false
		}
	}

	// Indoor/outdoor: only an explicit preference excludes
	if q.IsOutdoor != nil {
		if !*q.IsOutdoor && !item.IndoorSuitable {
			return false
		}
		if *q.IsOutdoor && !item.OutdoorSuitable {
			return false
		}
	}

	return true
}
