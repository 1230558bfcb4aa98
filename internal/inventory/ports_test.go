package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rackd/rackd/models"
)

func TestPortsUsedSorted(t *testing.T) {
	used := PortsUsed([]models.PortAssignment{
		{DevicePort: 24},
		{DevicePort: 1},
		{DevicePort: 5},
	})
	assert.Equal(t, []int{1, 5, 24}, used)
}

func TestPortsAvailable(t *testing.T) {
	free := PortsAvailable(24, []int{1, 5, 24})
	require.Len(t, free, 21)
	assert.Equal(t, 2, free[0])
	assert.Equal(t, 23, free[len(free)-1])
	assert.NotContains(t, free, 1)
	assert.NotContains(t, free, 5)
	assert.NotContains(t, free, 24)
}

func TestPortsAvailableAllFree(t *testing.T) {
	free := PortsAvailable(4, nil)
	assert.Equal(t, []int{1, 2, 3, 4}, free)
}

func TestPortsAvailableNone(t *testing.T) {
	assert.Empty(t, PortsAvailable(0, nil))
	assert.Empty(t, PortsAvailable(2, []int{1, 2}))
}

func TestUplinkAndFeedResolution(t *testing.T) {
	attached := []models.PortLink{
		{Port: 3, Peer: models.ResolvedDevice{
			Type:          models.DeviceTypeNetworkDevice,
			NetworkDevice: &models.NetworkDevice{PortDetails: models.PortDetails{Ports: 48}},
		}},
		{Port: 7, Peer: models.ResolvedDevice{
			Type: models.DeviceTypePDU,
			PDU:  &models.PowerDistributionUnit{PortDetails: models.PortDetails{Ports: 12}},
		}},
		{Port: 9, Peer: models.ResolvedDevice{
			Type:   models.DeviceTypeServer,
			Server: &models.Server{},
		}},
	}

	uplinks := Uplinks(attached)
	require.Len(t, uplinks, 1)
	assert.Equal(t, 3, uplinks[0].Port)

	feeds := PowerFeeds(attached)
	require.Len(t, feeds, 1)
	assert.Equal(t, 7, feeds[0].Port)
}
