package domain

// SearchProfile is one of the five scoring profiles the classifier maps an
// event onto. BIRTHDAY is the fallback.
type SearchProfile string

const (
	ProfilePreschool SearchProfile = "PRESCHOOL"
	ProfileSchool    SearchProfile = "SCHOOL"
	ProfileFestival  SearchProfile = "FESTIVAL"
	ProfileCorporate SearchProfile = "CORPORATE"
	ProfileBirthday  SearchProfile = "BIRTHDAY"
)

// QuoteRequest is the structured ranking query. Every field is optional;
// absent fields simply don't constrain or score.
type QuoteRequest struct {
	EventType       string     `json:"eventType,omitempty"`
	AgeMin          *int       `json:"ageMin,omitempty"`
	AgeMax          *int       `json:"ageMax,omitempty"`
	IsOutdoor       *bool      `json:"isOutdoor,omitempty"`
	SpaceLength     *float64   `json:"spaceLength,omitempty"`
	SpaceWidth      *float64   `json:"spaceWidth,omitempty"`
	EventDate       string     `json:"eventDate,omitempty"`
	IsCompetitive   *bool      `json:"isCompetitive,omitempty"`
	Intensity       *Intensity `json:"intensity,omitempty"`
	UserDescription string     `json:"userDescription,omitempty"`
}

// RankedCandidate is one scored item in a ranking response.
type RankedCandidate struct {
	InflatableID    string      `json:"inflatable_id"`
	Inflatable      *Inflatable `json:"inflatable"`
	Score           int         `json:"score"`
	Reasons         []string    `json:"reasons"`
	Penalties       []string    `json:"penalties,omitempty"`
	IsAvailable     bool        `json:"is_available"`
	Rank            int         `json:"rank"`
	CalculatedPrice float64     `json:"calculated_price"`
}

// RankingResult is the full ordered answer for one ranking invocation.
type RankingResult struct {
	Results         []RankedCandidate `json:"results"`
	Profile         SearchProfile     `json:"profile"`
	TotalCount      int               `json:"totalCount"`
	AvailableCount  int               `json:"availableCount"`
	SemanticEnabled bool              `json:"semanticEnabled"`
}
