package inventory

import (
	"fmt"

	"github.com/rackd/rackd/models"
)

// Placement is the rack-space claim of one cabinet assignment: the starting
// rack unit, the device height, and which face/depth of the cabinet it sits
// in.
type Placement struct {
	// AssignmentID identifies the claiming assignment (empty for a
	// candidate that has not been created yet)
	AssignmentID string

	// Position is the starting rack unit (1-based)
	Position int

	// RackUnits is the device height
	RackUnits int

	Orientation models.RackOrientation
	Depth       models.RackDepth
}

// span returns the inclusive rack-unit range the placement occupies. A
// zero-height device still occupies its starting unit.
func (p Placement) span() (lo, hi int) {
	lo = p.Position
	hi = p.Position + p.RackUnits - 1
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// OverlapError reports a rack-space collision between two placements.
type OverlapError struct {
	AssignmentID string
	Lo, Hi       int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("rack units %d-%d already occupied by assignment %s", e.Lo, e.Hi, e.AssignmentID)
}

// Conflicts reports whether two placements in the same cabinet claim
// overlapping rack space. Placements collide when their unit ranges
// intersect and they contend for the same depth: same orientation, or
// either device is FULL depth and blocks both faces.
func Conflicts(a, b Placement) bool {
	aLo, aHi := a.span()
	bLo, bHi := b.span()
	if aHi < bLo || bHi < aLo {
		return false
	}
	if a.Orientation == b.Orientation {
		return true
	}
	return a.Depth == models.DepthFull || b.Depth == models.DepthFull
}

// CheckPlacement validates a candidate placement against the existing
// placements of the same cabinet, returning an OverlapError on collision.
// The candidate's own assignment id is skipped so repositioning a device
// does not collide with itself.
func CheckPlacement(existing []Placement, candidate Placement) error {
	for _, p := range existing {
		if candidate.AssignmentID != "" && p.AssignmentID == candidate.AssignmentID {
			continue
		}
		if Conflicts(p, candidate) {
			lo, hi := p.span()
			return &OverlapError{AssignmentID: p.AssignmentID, Lo: lo, Hi: hi}
		}
	}
	return nil
}
