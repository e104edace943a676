package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmuchance/bouncematch/internal/domain"
)

var testTags = map[string]domain.Tag{
	"t-przedszkole": {ID: "t-przedszkole", Group: domain.TagGroupEvent, Name: "przedszkole", IsActive: true},
	"t-maluchy":     {ID: "t-maluchy", Group: domain.TagGroupAge, Name: "dla maluchów (2-4)", IsActive: true},
	"t-dorosli":     {ID: "t-dorosli", Group: domain.TagGroupAge, Name: "młodzież/dorośli", IsActive: true},
	"t-tor":         {ID: "t-tor", Group: domain.TagGroupMechanic, Name: "tor przeszkód", IsActive: true},
	"t-zamek":       {ID: "t-zamek", Group: domain.TagGroupMechanic, Name: "zamek", IsActive: true},
	"t-spokojne":    {ID: "t-spokojne", Group: domain.TagGroupIntent, Name: "spokojne", IsActive: true},
}

func TestScoreCandidate_NeutralBaseline(t *testing.T) {
	cfg := DefaultScoringConfig()
	item := testItem("plain", nil)

	got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, domain.QuoteRequest{}, nil)

	assert.Equal(t, cfg.NeutralBaseline, got.Score)
	assert.Empty(t, got.Reasons)
	assert.Empty(t, got.Penalties)
}

func TestScoreCandidate_SemanticBaseline(t *testing.T) {
	cfg := DefaultScoringConfig()
	item := testItem("plain", nil)

	t.Run("high similarity scales and explains", func(t *testing.T) {
		sim := 0.8
		got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, domain.QuoteRequest{}, &sim)
		assert.Equal(t, 40, got.Score)
		require.Len(t, got.Reasons, 1)
		assert.Equal(t, "Trafne dopasowanie do opisu (+40)", got.Reasons[0])
	})

	t.Run("low similarity scales silently", func(t *testing.T) {
		sim := 0.3
		got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, domain.QuoteRequest{}, &sim)
		assert.Equal(t, 15, got.Score)
		assert.Empty(t, got.Reasons)
	})
}

func TestScoreCandidate_TagSubscoreClamped(t *testing.T) {
	cfg := DefaultScoringConfig()
	// przedszkole (+40) and dla maluchów (+35) sum to 75, clamped to 40
	item := testItem("tagged", func(i *domain.Inflatable) {
		i.TagIDs = []string{"t-przedszkole", "t-maluchy"}
	})

	got := ScoreCandidate(cfg, domain.ProfilePreschool, &item, testTags, domain.QuoteRequest{}, nil)

	assert.Equal(t, cfg.NeutralBaseline+cfg.TagSubscoreMax, got.Score)
	assert.Contains(t, got.Reasons, "przedszkole (+40)")
	assert.Contains(t, got.Reasons, "dla maluchów (2-4) (+35)")
}

func TestScoreCandidate_TagPenaltiesFloorAtZero(t *testing.T) {
	cfg := DefaultScoringConfig()
	item := testItem("penalized", func(i *domain.Inflatable) {
		i.TagIDs = []string{"t-dorosli", "t-tor"}
	})

	got := ScoreCandidate(cfg, domain.ProfilePreschool, &item, testTags, domain.QuoteRequest{}, nil)

	// Negative tag subscore floors at zero instead of eating the baseline
	assert.Equal(t, cfg.NeutralBaseline, got.Score)
	assert.Contains(t, got.Penalties, "młodzież/dorośli (-35)")
	assert.Contains(t, got.Penalties, "tor przeszkód (-25)")
}

func TestScoreCandidate_UnknownTagIgnored(t *testing.T) {
	cfg := DefaultScoringConfig()
	item := testItem("dangling", func(i *domain.Inflatable) {
		i.TagIDs = []string{"t-deleted", "t-zamek"}
	})

	got := ScoreCandidate(cfg, domain.ProfilePreschool, &item, testTags, domain.QuoteRequest{}, nil)

	// zamek (+10) under PRESCHOOL; the dangling id contributes nothing
	assert.Equal(t, cfg.NeutralBaseline+10, got.Score)
}

func TestScoreCandidate_AgeBonus(t *testing.T) {
	cfg := DefaultScoringConfig()
	item := testItem("aged", func(i *domain.Inflatable) {
		i.AgeMin = intPtr(3)
		i.AgeMax = intPtr(7)
	})
	q := domain.QuoteRequest{AgeMin: intPtr(4), AgeMax: intPtr(6)}

	got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, q, nil)

	// overlap 2 / avg width 3 = 0.667 -> round(13.3) = 13
	assert.Equal(t, cfg.NeutralBaseline+13, got.Score)
	assert.Contains(t, got.Reasons, "Idealny wiek (+13)")
}

func TestScoreCandidate_FestivalBonuses(t *testing.T) {
	cfg := DefaultScoringConfig()
	item := testItem("big", func(i *domain.Inflatable) {
		i.MaxCapacity = intPtr(15)
		i.SimultaneousCapacity = intPtr(10)
		i.WowFactor = intPtr(5)
	})

	t.Run("festival gets capacity throughput and wow", func(t *testing.T) {
		got := ScoreCandidate(cfg, domain.ProfileFestival, &item, testTags, domain.QuoteRequest{}, nil)
		assert.Equal(t, cfg.NeutralBaseline+FestivalCapacityBonus+FestivalThroughputBonus+WowFactorBonus, got.Score)
		assert.Contains(t, got.Reasons, "Wysoka pojemność (+5)")
		assert.Contains(t, got.Reasons, "Duża przepustowość (+5)")
		assert.Contains(t, got.Reasons, "Efekt wow (+10)")
	})

	t.Run("corporate gets wow only", func(t *testing.T) {
		got := ScoreCandidate(cfg, domain.ProfileCorporate, &item, testTags, domain.QuoteRequest{}, nil)
		assert.Equal(t, cfg.NeutralBaseline+WowFactorBonus, got.Score)
	})

	t.Run("birthday gets none of them", func(t *testing.T) {
		got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, domain.QuoteRequest{}, nil)
		assert.Equal(t, cfg.NeutralBaseline, got.Score)
	})

	t.Run("thresholds are strict", func(t *testing.T) {
		edge := testItem("edge", func(i *domain.Inflatable) {
			i.MaxCapacity = intPtr(10)
			i.SimultaneousCapacity = intPtr(8)
			i.WowFactor = intPtr(3)
		})
		got := ScoreCandidate(cfg, domain.ProfileFestival, &edge, testTags, domain.QuoteRequest{}, nil)
		assert.Equal(t, cfg.NeutralBaseline, got.Score)
	})
}

func TestScoreCandidate_Intensity(t *testing.T) {
	cfg := DefaultScoringConfig()
	medium := domain.IntensityMedium
	low := domain.IntensityLow

	tests := []struct {
		name          string
		wanted        *domain.Intensity
		itemIntensity domain.Intensity
		delta         int
	}{
		{"exact match", &medium, domain.IntensityMedium, IntensityExactBonus},
		{"adjacent level", &medium, domain.IntensityHigh, IntensityAdjacentBonus},
		{"two levels apart", &low, domain.IntensityHigh, IntensityMismatchPenalty},
		{"no preference", nil, domain.IntensityHigh, 0},
		{"item intensity unset", &medium, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := testItem("x", func(i *domain.Inflatable) { i.Intensity = tt.itemIntensity })
			q := domain.QuoteRequest{Intensity: tt.wanted}
			got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, q, nil)
			assert.Equal(t, cfg.NeutralBaseline+tt.delta, got.Score)
		})
	}
}

func TestScoreCandidate_Competitive(t *testing.T) {
	cfg := DefaultScoringConfig()

	t.Run("wanted and present", func(t *testing.T) {
		item := testItem("x", func(i *domain.Inflatable) { i.IsCompetitive = true })
		q := domain.QuoteRequest{IsCompetitive: boolPtr(true)}
		got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, q, nil)
		assert.Equal(t, cfg.NeutralBaseline+CompetitiveMatchBonus, got.Score)
		assert.Contains(t, got.Reasons, "Rywalizacja - zgodnie z oczekiwaniami (+15)")
	})

	t.Run("wanted but absent", func(t *testing.T) {
		item := testItem("x", nil)
		q := domain.QuoteRequest{IsCompetitive: boolPtr(true)}
		got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, q, nil)
		assert.Equal(t, cfg.NeutralBaseline+CompetitiveMissPenalty, got.Score)
		assert.Contains(t, got.Penalties, "Brak elementu rywalizacji (-10)")
	})

	t.Run("not wanted scores nothing either way", func(t *testing.T) {
		item := testItem("x", func(i *domain.Inflatable) { i.IsCompetitive = true })
		got := ScoreCandidate(cfg, domain.ProfileBirthday, &item, testTags, domain.QuoteRequest{IsCompetitive: boolPtr(false)}, nil)
		assert.Equal(t, cfg.NeutralBaseline, got.Score)
	})
}

func TestScoreCandidate_EventFitness(t *testing.T) {
	cfg := DefaultScoringConfig()
	item := testItem("fit", func(i *domain.Inflatable) {
		i.EventTypesFit = []domain.EventFitness{domain.FitFestival}
	})

	t.Run("direct match", func(t *testing.T) {
		q := domain.QuoteRequest{EventType: "festival"}
		got := ScoreCandidate(cfg, domain.ProfileFestival, &item, testTags, q, nil)
		assert.Equal(t, cfg.NeutralBaseline+EventFitnessBonus, got.Score)
		assert.Contains(t, got.Reasons, "Pasuje do typu imprezy (+20)")
	})

	t.Run("corporate picnic reaches festival-fit items", func(t *testing.T) {
		q := domain.QuoteRequest{EventType: "corporate_picnic"}
		got := ScoreCandidate(cfg, domain.ProfileFestival, &item, testTags, q, nil)
		assert.Equal(t, cfg.NeutralBaseline+EventFitnessBonus, got.Score)
	})

	t.Run("no match no bonus", func(t *testing.T) {
		q := domain.QuoteRequest{EventType: "birthday"}
		got := ScoreCandidate(cfg, domain.ProfileFestival, &item, testTags, q, nil)
		assert.Equal(t, cfg.NeutralBaseline, got.Score)
	})
}

func TestScoreCandidate_ClampAndCaps(t *testing.T) {
	cfg := DefaultScoringConfig()
	item := testItem("maxed", func(i *domain.Inflatable) {
		i.TagIDs = []string{"t-przedszkole", "t-maluchy", "t-zamek", "t-spokojne"}
		i.AgeMin = intPtr(3)
		i.AgeMax = intPtr(6)
		i.Intensity = domain.IntensityLow
		i.EventTypesFit = []domain.EventFitness{domain.FitPreschool}
	})
	low := domain.IntensityLow
	sim := 1.0
	q := domain.QuoteRequest{
		EventType: "przedszkole",
		AgeMin:    intPtr(3),
		AgeMax:    intPtr(6),
		Intensity: &low,
	}

	got := ScoreCandidate(cfg, domain.ProfilePreschool, &item, testTags, q, &sim)

	// 50 baseline + 40 tags + 20 age + 15 intensity + 20 fitness = 145 -> 100
	assert.Equal(t, ScoreMax, got.Score)
	assert.Len(t, got.Reasons, cfg.MaxReasons)
}
