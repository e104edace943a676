package semantic

import (
	"fmt"
	"strings"

	"github.com/dmuchance/bouncematch/internal/domain"
)

// BuildContent renders the searchable text document for one inflatable:
// labelled Polish lines, one attribute each. Attributes with no value are
// dropped; numeric gaps in always-present lines render as "?".
func BuildContent(item *domain.Inflatable, tagNames []string) string {
	tags := "brak"
	if len(tagNames) > 0 {
		tags = strings.Join(tagNames, ", ")
	}

	lines := []string{
		"Nazwa: " + item.Name,
		"Typ: " + string(item.Type),
		"Opis: " + item.Description,
		fmt.Sprintf("Dla wieku: %s-%s lat", intOrQuestion(item.AgeMin), intOrQuestion(item.AgeMax)),
		"Tagi: " + tags,
		"Intensywność: " + string(item.Intensity),
		fmt.Sprintf("Pojemność: %s osób, jednocześnie: %s",
			intOrQuestion(item.MaxCapacity), intOrQuestion(item.SimultaneousCapacity)),
	}

	if len(item.EventTypesFit) > 0 {
		fits := make([]string, len(item.EventTypesFit))
		for i, f := range item.EventTypesFit {
			fits[i] = string(f)
		}
		lines = append(lines, "Najlepszy dla eventów: "+strings.Join(fits, ", "))
	}
	if item.ColorTheme != "" {
		lines = append(lines, "Motyw: "+item.ColorTheme)
	}
	if item.BestForNotes != "" {
		lines = append(lines, "Notatki: "+item.BestForNotes)
	}
	if item.WowFactor != nil && *item.WowFactor > 0 {
		lines = append(lines, fmt.Sprintf("Wow factor: %d/5", *item.WowFactor))
	}

	// Drop lines whose value came out empty
	out := lines[:0]
	for _, line := range lines {
		if !strings.HasSuffix(line, ": ") && !strings.HasSuffix(line, ":") {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func intOrQuestion(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}
