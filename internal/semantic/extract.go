package semantic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmuchance/bouncematch/internal/domain"
)

// extractionSystemPrompt instructs the model to mine structured attributes
// from a free-text event description. The response must be a bare JSON
// object; found=false means nothing usable was stated.
const extractionSystemPrompt = `Jesteś asystentem wypożyczalni dmuchańców. Z opisu imprezy wyciągnij atrybuty.
Odpowiedz wyłącznie obiektem JSON o polach:
  "found": bool - czy opis zawiera jakiekolwiek z poniższych informacji,
  "is_outdoor": bool lub null - czy impreza jest na zewnątrz,
  "age_min": liczba lub null - najniższy wiek uczestników,
  "age_max": liczba lub null - najwyższy wiek uczestników.
Nie zgaduj: pole, o którym opis nie mówi, ustaw na null.`

type extractionResult struct {
	Found     bool  `json:"found"`
	IsOutdoor *bool `json:"is_outdoor"`
	AgeMin    *int  `json:"age_min"`
	AgeMax    *int  `json:"age_max"`
}

// extractAttributes runs the extraction prompt against the free-text
// description and parses the structured answer.
func extractAttributes(ctx context.Context, llm LLM, description string) (domain.ExtractedAttributes, error) {
	raw, err := llm.CreateCompletion(ctx, extractionSystemPrompt, description)
	if err != nil {
		return domain.ExtractedAttributes{}, err
	}
	return parseExtraction(raw)
}

func parseExtraction(raw string) (domain.ExtractedAttributes, error) {
	var parsed extractionResult
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return domain.ExtractedAttributes{}, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	out := domain.ExtractedAttributes{
		Found:     parsed.Found,
		IsOutdoor: parsed.IsOutdoor,
		AgeMin:    parsed.AgeMin,
		AgeMax:    parsed.AgeMax,
	}

	// A model that claims found but filled nothing in is treated as empty
	if out.IsOutdoor == nil && out.AgeMin == nil && out.AgeMax == nil {
		out.Found = false
	}

	// Swapped bounds are a model mistake, not a reason to fail
	if out.AgeMin != nil && out.AgeMax != nil && *out.AgeMin > *out.AgeMax {
		out.AgeMin, out.AgeMax = out.AgeMax, out.AgeMin
	}

	return out, nil
}
