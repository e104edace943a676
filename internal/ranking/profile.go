package ranking

import "github.com/dmuchance/bouncematch/internal/domain"

// UI event type identifiers as the wizard sends them
const (
	EventTypePreschool       = "przedszkole"
	EventTypeSchool          = "school_event"
	EventTypeFestival        = "festival"
	EventTypeCorporatePicnic = "corporate_picnic"
	EventTypeCorporate       = "corporate_event"
	EventTypeBirthday        = "birthday"
)

// ClassifyProfile maps the event type and participant age onto one of the
// five scoring profiles. First matching rule wins; BIRTHDAY is the fallback.
func ClassifyProfile(eventType string, ageMin, ageMax *int) domain.SearchProfile {
	lo := DefaultAgeMin
	hi := DefaultAgeMax
	if ageMin != nil {
		lo = *ageMin
	}
	if ageMax != nil {
		hi = *ageMax
	}
	avgAge := float64(lo+hi) / 2

	if eventType == EventTypePreschool || avgAge < PreschoolAgeLimit {
		return domain.ProfilePreschool
	}
	if eventType == EventTypeSchool || (avgAge >= SchoolAgeMin && avgAge <= SchoolAgeMax) {
		return domain.ProfileSchool
	}
	if eventType == EventTypeFestival || eventType == EventTypeCorporatePicnic {
		return domain.ProfileFestival
	}
	if eventType == EventTypeCorporate {
		return domain.ProfileCorporate
	}
	return domain.ProfileBirthday
}
