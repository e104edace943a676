package domain

// InflatableType categorizes a rentable unit
type InflatableType string

const (
	TypeSlide          InflatableType = "slide"
	TypeCastle         InflatableType = "castle"
	TypeObstacleCourse InflatableType = "obstacle_course"
	TypeCombo          InflatableType = "combo"
	TypeForToddlers    InflatableType = "for_toddlers"
	TypeInteractive    InflatableType = "interactive"
	TypeOther          InflatableType = "other"
)

// Intensity describes how physically demanding an attraction is
type Intensity string

const (
	IntensityLow    Intensity = "LOW"
	IntensityMedium Intensity = "MEDIUM"
	IntensityHigh   Intensity = "HIGH"
)

// Level maps an intensity to an ordinal scale (LOW=0, MEDIUM=1, HIGH=2).
// Unknown values report -1 so callers can treat them as unset.
func (i Intensity) Level() int {
	switch i {
	case IntensityLow:
		return 0
	case IntensityMedium:
		return 1
	case IntensityHigh:
		return 2
	}
	return -1
}

// SurfaceType identifies a ground surface the unit can be set up on
type SurfaceType string

const (
	SurfaceGrass   SurfaceType = "grass"
	SurfaceAsphalt SurfaceType = "asphalt"
	SurfaceIndoor  SurfaceType = "indoor"
	SurfaceSand    SurfaceType = "sand"
)

// EventFitness identifies an event category a unit is declared to suit
type EventFitness string

const (
	FitBirthday  EventFitness = "birthday"
	FitPreschool EventFitness = "preschool"
	FitSchool    EventFitness = "school"
	FitFestival  EventFitness = "festival"
	FitCorporate EventFitness = "corporate"
	FitCommunion EventFitness = "communion"
	FitWedding   EventFitness = "wedding"
)

// Inflatable represents a rentable bounce-house unit. Optional attributes are
// pointers; nil means the operator never filled the field in. The ranking
// engine treats the record as read-only.
type Inflatable struct {
	ID               string         `json:"id" db:"id"`
	Name             string         `json:"name" db:"name"`
	Description      string         `json:"description,omitempty" db:"description"`
	ShortDescription string         `json:"short_description,omitempty" db:"short_description"`
	Type             InflatableType `json:"type" db:"type"`

	AgeMin *int `json:"age_min,omitempty" db:"age_min"`
	AgeMax *int `json:"age_max,omitempty" db:"age_max"`

	MaxCapacity          *int `json:"max_capacity,omitempty" db:"max_capacity"`
	SimultaneousCapacity *int `json:"simultaneous_capacity,omitempty" db:"simultaneous_capacity"`

	Length *float64 `json:"length,omitempty" db:"length"`
	Width  *float64 `json:"width,omitempty" db:"width"`
	Height *float64 `json:"height,omitempty" db:"height"`

	MinSpaceLength *float64 `json:"min_space_length,omitempty" db:"min_space_length"`
	MinSpaceWidth  *float64 `json:"min_space_width,omitempty" db:"min_space_width"`

	IndoorSuitable  bool          `json:"indoor_suitable" db:"indoor_suitable"`
	OutdoorSuitable bool          `json:"outdoor_suitable" db:"outdoor_suitable"`
	SurfaceTypes    []SurfaceType `json:"surface_types,omitempty" db:"surface_types"`

	RequiresPower bool `json:"requires_power" db:"requires_power"`
	OutletCount   *int `json:"outlet_count,omitempty" db:"outlet_count"`

	SetupTimeMinutes *int `json:"setup_time_minutes,omitempty" db:"setup_time_minutes"`

	BasePrice     float64            `json:"base_price" db:"base_price"`
	DurationPrice map[string]float64 `json:"duration_prices,omitempty" db:"duration_prices"`
	PricePerHour  *float64           `json:"price_per_hour,omitempty" db:"price_per_hour"`
	DeliveryPrice *float64           `json:"delivery_price,omitempty" db:"delivery_price"`

	TagIDs []string `json:"tag_ids,omitempty" db:"tag_ids"`

	Intensity     Intensity      `json:"intensity,omitempty" db:"intensity"`
	IsCompetitive bool           `json:"is_competitive" db:"is_competitive"`
	EventTypesFit []EventFitness `json:"event_types_fit,omitempty" db:"event_types_fit"`
	WowFactor     *int           `json:"wow_factor,omitempty" db:"wow_factor"`
	ColorTheme    string         `json:"color_theme,omitempty" db:"color_theme"`
	BestForNotes  string         `json:"best_for_notes,omitempty" db:"best_for_notes"`

	IsActive  bool `json:"is_active" db:"is_active"`
	SortOrder int  `json:"sort_order" db:"sort_order"`
}

// HasAgeRange reports whether both age bounds are declared.
func (i *Inflatable) HasAgeRange() bool {
	return i.AgeMin != nil && i.AgeMax != nil
}
