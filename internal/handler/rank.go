package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/logger"
	"github.com/dmuchance/bouncematch/internal/metrics"
	"github.com/dmuchance/bouncematch/internal/ranking"
)

// RankRequest is the wire form of a ranking query. All fields are optional;
// the engine works with whatever the wizard collected so far.
type RankRequest struct {
	EventType       string   `json:"eventType" validate:"omitempty,max=50"`
	AgeMin          *int     `json:"ageMin" validate:"omitempty,min=0,max=120"`
	AgeMax          *int     `json:"ageMax" validate:"omitempty,min=0,max=120"`
	IsOutdoor       *bool    `json:"isOutdoor"`
	SpaceLength     *float64 `json:"spaceLength" validate:"omitempty,gt=0"`
	SpaceWidth      *float64 `json:"spaceWidth" validate:"omitempty,gt=0"`
	EventDate       string   `json:"eventDate" validate:"omitempty,isodate"`
	IsCompetitive   *bool    `json:"isCompetitive"`
	Intensity       string   `json:"intensity" validate:"omitempty,intensity"`
	UserDescription string   `json:"userDescription" validate:"omitempty,max=2000"`
}

// toQuery converts the wire request into the domain query.
func (r *RankRequest) toQuery() domain.QuoteRequest {
	q := domain.QuoteRequest{
		EventType:       r.EventType,
		AgeMin:          r.AgeMin,
		AgeMax:          r.AgeMax,
		IsOutdoor:       r.IsOutdoor,
		SpaceLength:     r.SpaceLength,
		SpaceWidth:      r.SpaceWidth,
		EventDate:       r.EventDate,
		IsCompetitive:   r.IsCompetitive,
		UserDescription: r.UserDescription,
	}
	if r.Intensity != "" {
		intensity := domain.Intensity(r.Intensity)
		q.Intensity = &intensity
	}
	return q
}

// HandleRank ranks the catalog against an event description
// @Summary Rank inflatables for an event
// @Description Scores and orders the active catalog against the event details, most suitable first
// @Tags ranking
// @Accept json
// @Produce json
// @Param request body RankRequest true "Event details"
// @Success 200 {object} domain.RankingResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /rank [post]
// @Security ApiKeyAuth
func HandleRank(svc ranking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RankRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestSummary,
				"fields": FormatValidationError(err),
			})
			return
		}
		if req.AgeMin != nil && req.AgeMax != nil && *req.AgeMin > *req.AgeMax {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestSummary,
				"fields": map[string]string{"agemax": "Must not be below agemin"},
			})
			return
		}

		start := time.Now()
		result, err := svc.Rank(r.Context(), req.toQuery())
		if err != nil {
			log.Error(ErrMsgRankFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		semantic := strconv.FormatBool(result.SemanticEnabled)
		metrics.RankingsServed.WithLabelValues(string(result.Profile), semantic).Inc()
		metrics.RankingDuration.WithLabelValues(semantic).Observe(time.Since(start).Seconds())

		respondJSON(w, http.StatusOK, result)
	}
}
