//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type rankResponse struct {
	Results []struct {
		Rank        int  `json:"rank"`
		Score       int  `json:"score"`
		IsAvailable bool `json:"is_available"`
	} `json:"results"`
	Profile         string `json:"profile"`
	TotalCount      int    `json:"totalCount"`
	AvailableCount  int    `json:"availableCount"`
	SemanticEnabled bool   `json:"semanticEnabled"`
}

func TestRankPreview(t *testing.T) {
	// Empty body is a valid preview request: catalog order, no filters
	resp, body := makeRequest(t, "POST", "/api/v1/rank", map[string]interface{}{})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, string(body))
	}

	var ranking rankResponse
	if err := json.Unmarshal(body, &ranking); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if ranking.TotalCount != len(ranking.Results) {
		t.Errorf("totalCount %d does not match %d results", ranking.TotalCount, len(ranking.Results))
	}

	for i, r := range ranking.Results {
		if r.Score < 0 || r.Score > 100 {
			t.Errorf("result %d has score %d outside [0,100]", i, r.Score)
		}
	}
}

func TestRankBirthdayParty(t *testing.T) {
	resp, body := makeRequest(t, "POST", "/api/v1/rank", map[string]interface{}{
		"eventType": "urodziny",
		"ageMin":    4,
		"ageMax":    8,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, string(body))
	}

	var ranking rankResponse
	if err := json.Unmarshal(body, &ranking); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if ranking.Profile == "" {
		t.Error("Expected a classified profile in response")
	}

	// Available units must come before unavailable regardless of score
	seenUnavailable := false
	for i, r := range ranking.Results {
		if !r.IsAvailable {
			seenUnavailable = true
		} else if seenUnavailable {
			t.Errorf("available result at position %d after an unavailable one", i)
		}
	}
}

func TestRankRejectsInvalidDate(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/rank", map[string]interface{}{
		"eventDate": "not-a-date",
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
