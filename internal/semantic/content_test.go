package semantic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmuchance/bouncematch/internal/domain"
)

func TestBuildContent(t *testing.T) {
	ageMin, ageMax := 3, 8
	wow := 4
	capacity := 12
	item := &domain.Inflatable{
		ID:          "inf-1",
		Name:        "Zamek Rycerski",
		Type:        domain.TypeCastle,
		Description: "Duży zamek ze zjeżdżalnią",
		AgeMin:      &ageMin,
		AgeMax:      &ageMax,
		Intensity:   domain.IntensityMedium,
		MaxCapacity: &capacity,
		EventTypesFit: []domain.EventFitness{
			domain.FitBirthday, domain.FitPreschool,
		},
		ColorTheme:   "rycerski",
		BestForNotes: "hit na urodziny",
		WowFactor:    &wow,
	}

	content := BuildContent(item, []string{"zamek", "urodziny"})
	lines := strings.Split(content, "\n")

	assert.Contains(t, lines, "Nazwa: Zamek Rycerski")
	assert.Contains(t, lines, "Typ: castle")
	assert.Contains(t, lines, "Opis: Duży zamek ze zjeżdżalnią")
	assert.Contains(t, lines, "Dla wieku: 3-8 lat")
	assert.Contains(t, lines, "Tagi: zamek, urodziny")
	assert.Contains(t, lines, "Intensywność: MEDIUM")
	assert.Contains(t, lines, "Pojemność: 12 osób, jednocześnie: ?")
	assert.Contains(t, lines, "Najlepszy dla eventów: birthday, preschool")
	assert.Contains(t, lines, "Motyw: rycerski")
	assert.Contains(t, lines, "Notatki: hit na urodziny")
	assert.Contains(t, lines, "Wow factor: 4/5")
}

func TestBuildContent_SparseItem(t *testing.T) {
	item := &domain.Inflatable{
		ID:   "inf-2",
		Name: "Mini Dmuchaniec",
		Type: domain.TypeOther,
	}

	content := BuildContent(item, nil)
	lines := strings.Split(content, "\n")

	assert.Contains(t, lines, "Nazwa: Mini Dmuchaniec")
	assert.Contains(t, lines, "Dla wieku: ?-? lat")
	assert.Contains(t, lines, "Tagi: brak")
	// Empty-valued lines are dropped entirely
	for _, line := range lines {
		assert.False(t, strings.HasSuffix(line, ": "), "unexpected empty line %q", line)
	}
	assert.NotContains(t, content, "Opis:")
	assert.NotContains(t, content, "Intensywność:")
	assert.NotContains(t, content, "Motyw:")
	assert.NotContains(t, content, "Wow factor:")
}
