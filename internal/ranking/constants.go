package ranking

// Age defaults used by the profile classifier when the query omits bounds
const (
	DefaultAgeMin = 0
	DefaultAgeMax = 99
)

// Age thresholds for profile classification
const (
	PreschoolAgeLimit = 6  // average age below this maps to PRESCHOOL
	SchoolAgeMin      = 6  // average age range for SCHOOL
	SchoolAgeMax      = 10
)

// Score band
const (
	ScoreMin = 0
	ScoreMax = 100
)

// Fixed bonuses and penalties of the scoring scheme
const (
	FestivalCapacityBonus     = 5  // max_capacity > 10 under FESTIVAL
	FestivalThroughputBonus   = 5  // simultaneous_capacity > 8 under FESTIVAL
	WowFactorBonus            = 10 // wow_factor >= 4 under FESTIVAL or CORPORATE
	IntensityExactBonus       = 15
	IntensityAdjacentBonus    = 5
	IntensityMismatchPenalty  = -10
	CompetitiveMatchBonus     = 15
	CompetitiveMissPenalty    = -10
	EventFitnessBonus         = 20
	SimilarityBaselineScale   = 50 // semantic baseline = similarity * 50
)

// PersonalizeTopCount bounds how many of the leading results get
// LLM-personalized reason strings.
const PersonalizeTopCount = 6

// Thresholds for the fixed bonuses
const (
	FestivalCapacityThreshold   = 10
	FestivalThroughputThreshold = 8
	WowFactorThreshold          = 4
)

// Error and log messages
const (
	LogMsgRankingStarted   = "Ranking started"
	LogMsgRankingCompleted = "Ranking completed"
	LogMsgSemanticSkipped  = "Semantic augmentation skipped"
	ErrMsgLoadCatalog      = "failed to load catalog: %w"
	ErrMsgLoadTags         = "failed to load tags: %w"
	ErrMsgResolveDates     = "failed to resolve availability: %w"
)
