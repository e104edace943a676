package semantic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmuchance/bouncematch/internal/domain"
)

// personalizationSystemPrompt asks the model for short, concrete reasons per
// candidate, keyed by inflatable id. Unknown ids in the answer are discarded.
const personalizationSystemPrompt = `Jesteś doradcą wypożyczalni dmuchańców. Dostaniesz opis imprezy klienta
oraz listę dopasowanych dmuchańców. Dla każdego dmuchańca napisz 1-3 krótkie,
konkretne powody, dlaczego pasuje do tej imprezy. Pisz po polsku, bez ogólników.
Odpowiedz wyłącznie obiektem JSON: klucz to "id" dmuchańca, wartość to tablica powodów.`

type personalizationCandidate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Score       int    `json:"score"`
}

type personalizationInput struct {
	Event      domain.QuoteRequest        `json:"event"`
	Candidates []personalizationCandidate `json:"candidates"`
}

// personalizeReasons asks the model to rewrite the reasons for the leading
// candidates. Entries for ids that were never offered are dropped, and each
// reason list is capped.
func personalizeReasons(ctx context.Context, llm LLM, q domain.QuoteRequest, candidates []domain.RankedCandidate) (map[string][]string, error) {
	input := personalizationInput{
		Event:      q,
		Candidates: make([]personalizationCandidate, 0, len(candidates)),
	}
	for _, c := range candidates {
		pc := personalizationCandidate{ID: c.InflatableID, Score: c.Score}
		if c.Inflatable != nil {
			pc.Name = c.Inflatable.Name
			pc.Description = c.Inflatable.ShortDescription
		}
		input.Candidates = append(input.Candidates, pc)
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode personalization input: %w", err)
	}

	raw, err := llm.CreateCompletion(ctx, personalizationSystemPrompt, string(payload))
	if err != nil {
		return nil, err
	}

	var parsed map[string][]string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse personalization response: %w", err)
	}

	offered := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		offered[c.InflatableID] = true
	}

	out := make(map[string][]string, len(parsed))
	for id, reasons := range parsed {
		if !offered[id] || len(reasons) == 0 {
			continue
		}
		if len(reasons) > PersonalizeMaxReasons {
			reasons = reasons[:PersonalizeMaxReasons]
		}
		out[id] = reasons
	}
	return out, nil
}
