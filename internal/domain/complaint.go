package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	StatusReported   ComplaintStatus = "Reported"
	StatusAssigned   ComplaintStatus = "Assigned"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// Statuses lists every status in lifecycle order. The progression is not
// enforced: any status may be set from any other, including back-transitions.
func Statuses() []ComplaintStatus {
	return []ComplaintStatus{StatusReported, StatusAssigned, StatusInProgress, StatusResolved}
}

// Valid reports whether s is a defined status value.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusReported, StatusAssigned, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// ComplaintCategory enumerates maintenance categories residents can pick.
type ComplaintCategory string

const (
	CategoryPlumbing    ComplaintCategory = "Plumbing"
	CategoryElectrical  ComplaintCategory = "Electrical"
	CategoryHeating     ComplaintCategory = "Heating"
	CategoryCleanliness ComplaintCategory = "Cleanliness"
	CategoryMaintenance ComplaintCategory = "Maintenance"
)

// Categories lists every selectable category.
func Categories() []ComplaintCategory {
	return []ComplaintCategory{
		CategoryPlumbing,
		CategoryElectrical,
		CategoryHeating,
		CategoryCleanliness,
		CategoryMaintenance,
	}
}

// Valid reports whether c is a defined category value.
func (c ComplaintCategory) Valid() bool {
	for _, candidate := range Categories() {
		if c == candidate {
			return true
		}
	}
	return false
}

// Complaint is the sole persistent entity: a single resident-submitted
// maintenance issue. ID and CreatedAt are set once at creation and never
// change; only Status is mutated afterwards.
type Complaint struct {
	ID          string
	RoomNumber  string
	Category    ComplaintCategory
	Description string
	Status      ComplaintStatus
	CreatedAt   time.Time
}
