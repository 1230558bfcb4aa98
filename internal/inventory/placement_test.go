package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rackd/rackd/models"
)

func place(pos, height int, o models.RackOrientation, d models.RackDepth) Placement {
	return Placement{AssignmentID: models.NewID(), Position: pos, RackUnits: height, Orientation: o, Depth: d}
}

func TestConflictsSameOrientation(t *testing.T) {
	a := place(1, 4, models.OrientationFront, models.DepthHalf) // units 1-4
	b := place(4, 2, models.OrientationFront, models.DepthHalf) // units 4-5
	c := place(5, 2, models.OrientationFront, models.DepthHalf) // units 5-6

	assert.True(t, Conflicts(a, b))
	assert.False(t, Conflicts(a, c))
}

func TestConflictsAcrossOrientations(t *testing.T) {
	front := place(10, 2, models.OrientationFront, models.DepthHalf)
	rear := place(10, 2, models.OrientationRear, models.DepthHalf)
	fullRear := place(11, 2, models.OrientationRear, models.DepthFull)

	// Half-depth devices on opposite faces can share rack units.
	assert.False(t, Conflicts(front, rear))

	// A full-depth device blocks both faces.
	assert.True(t, Conflicts(front, fullRear))
	assert.True(t, Conflicts(fullRear, front))
}

func TestCheckPlacement(t *testing.T) {
	existing := []Placement{
		place(1, 4, models.OrientationFront, models.DepthFull),
		place(10, 1, models.OrientationFront, models.DepthHalf),
	}

	err := CheckPlacement(existing, Placement{Position: 5, RackUnits: 2, Orientation: models.OrientationFront, Depth: models.DepthHalf})
	assert.NoError(t, err)

	err = CheckPlacement(existing, Placement{Position: 3, RackUnits: 2, Orientation: models.OrientationRear, Depth: models.DepthHalf})
	require.Error(t, err)

	var overlap *OverlapError
	require.ErrorAs(t, err, &overlap)
	assert.Equal(t, existing[0].AssignmentID, overlap.AssignmentID)
	assert.Equal(t, 1, overlap.Lo)
	assert.Equal(t, 4, overlap.Hi)
}

func TestCheckPlacementSkipsSelf(t *testing.T) {
	cur := place(1, 2, models.OrientationFront, models.DepthHalf)

	// Repositioning within its own footprint must not self-collide.
	moved := cur
	moved.Position = 2
	assert.NoError(t, CheckPlacement([]Placement{cur}, moved))
}

func TestZeroHeightOccupiesStartingUnit(t *testing.T) {
	a := Placement{Position: 3, RackUnits: 0, Orientation: models.OrientationFront, Depth: models.DepthHalf}
	b := Placement{Position: 3, RackUnits: 1, Orientation: models.OrientationFront, Depth: models.DepthHalf}
	assert.True(t, Conflicts(a, b))
}
