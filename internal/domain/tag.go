package domain

// TagGroup categorizes tags for the scoring weight tables
type TagGroup string

const (
	TagGroupEvent    TagGroup = "EVENT"
	TagGroupAge      TagGroup = "AGE"
	TagGroupMechanic TagGroup = "MECHANIC"
	TagGroupTheme    TagGroup = "THEME"
	TagGroupIntent   TagGroup = "INTENT"
)

// Tag is a categorization label attached to inflatables. The composite
// Group:Name key is what the scoring weight tables are keyed by.
type Tag struct {
	ID       string   `json:"id" db:"id"`
	Group    TagGroup `json:"group" db:"tag_group"`
	Name     string   `json:"name" db:"name"`
	Color    string   `json:"color,omitempty" db:"color"`
	IsActive bool     `json:"is_active" db:"is_active"`
}

// Key returns the "GROUP:name" lookup key used by boost/penalty tables.
func (t Tag) Key() string {
	return string(t.Group) + ":" + t.Name
}
