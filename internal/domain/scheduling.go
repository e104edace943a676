package domain

// BookingStatus is the lifecycle state of a reservation
type BookingStatus string

const (
	BookingTentative BookingStatus = "tentative"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a reservation for one inflatable over an inclusive date range.
// Dates are zero-padded ISO strings (YYYY-MM-DD), so lexicographic comparison
// matches chronological order.
type Booking struct {
	ID           string        `json:"id" db:"id"`
	InflatableID string        `json:"inflatable_id" db:"inflatable_id"`
	StartDate    string        `json:"start_date" db:"start_date"`
	EndDate      string        `json:"end_date" db:"end_date"`
	StartTime    string        `json:"start_time,omitempty" db:"start_time"`
	EndTime      string        `json:"end_time,omitempty" db:"end_time"`
	Status       BookingStatus `json:"status" db:"status"`
	ClientName   string        `json:"client_name,omitempty" db:"client_name"`
	ClientPhone  string        `json:"client_phone,omitempty" db:"client_phone"`
	ClientEmail  string        `json:"client_email,omitempty" db:"client_email"`
	Price        float64       `json:"price" db:"price"`
	Number       string        `json:"booking_number" db:"booking_number"`
}

// Covers reports whether the booking's inclusive date range contains date.
func (b Booking) Covers(date string) bool {
	return date >= b.StartDate && date <= b.EndDate
}

// Blocks reports whether the booking makes the item unavailable on date.
// Cancelled bookings never block.
func (b Booking) Blocks(date string) bool {
	return b.Status != BookingCancelled && b.Covers(date)
}

// BlockReason categorizes a manual availability exclusion
type BlockReason string

const (
	BlockRepair      BlockReason = "repair"
	BlockMaintenance BlockReason = "maintenance"
	BlockReserved    BlockReason = "reserved"
	BlockOther       BlockReason = "other"
)

// AvailabilityBlock is an operator-created date-range exclusion for one item.
// Inactive blocks are ignored by the availability resolver.
type AvailabilityBlock struct {
	ID           string      `json:"id" db:"id"`
	InflatableID string      `json:"inflatable_id" db:"inflatable_id"`
	StartDate    string      `json:"start_date" db:"start_date"`
	EndDate      string      `json:"end_date" db:"end_date"`
	Reason       BlockReason `json:"reason" db:"reason"`
	ReasonText   string      `json:"reason_description,omitempty" db:"reason_description"`
	IsActive     bool        `json:"is_active" db:"is_active"`
}

// Covers reports whether the block's inclusive date range contains date.
func (b AvailabilityBlock) Covers(date string) bool {
	return date >= b.StartDate && date <= b.EndDate
}
