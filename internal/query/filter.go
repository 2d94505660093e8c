package query

import (
	"strings"

	"github.com/spec-kit/hall-complaints/internal/domain"
)

// All disables a category or status filter.
const All = "all"

// Filter narrows the admin dashboard view. Zero value matches everything.
type Filter struct {
	// Search is matched case-insensitively as a substring of the room
	// number, tracking id, and description.
	Search string
	// Category and Status are exact-match filters; empty or "all" disables.
	Category string
	Status   string
}

// Apply returns the complaints matching every active filter clause. The
// input order is preserved and the input slice is never mutated.
func Apply(complaints []domain.Complaint, f Filter) []domain.Complaint {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	result := make([]domain.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if search != "" && !matchesSearch(c, search) {
			continue
		}
		if active(f.Category) && string(c.Category) != f.Category {
			continue
		}
		if active(f.Status) && string(c.Status) != f.Status {
			continue
		}
		result = append(result, c)
	}
	return result
}

func matchesSearch(c domain.Complaint, search string) bool {
	return strings.Contains(strings.ToLower(c.RoomNumber), search) ||
		strings.Contains(strings.ToLower(c.ID), search) ||
		strings.Contains(strings.ToLower(c.Description), search)
}

func active(val string) bool {
	return val != "" && val != All
}
