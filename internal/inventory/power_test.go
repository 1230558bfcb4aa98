package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rackd/rackd/models"
)

func pdu(volts, amps, draw int) models.ResolvedDevice {
	return models.ResolvedDevice{
		ID:   models.NewID(),
		Type: models.DeviceTypePDU,
		PDU: &models.PowerDistributionUnit{
			DeviceDetails: models.DeviceDetails{Draw: draw},
			Volts:         volts,
			Amps:          amps,
		},
	}
}

func server(draw int) models.ResolvedDevice {
	return models.ResolvedDevice{
		ID:   models.NewID(),
		Type: models.DeviceTypeServer,
		Server: &models.Server{
			DeviceDetails: models.DeviceDetails{Draw: draw},
		},
	}
}

func TestCabinetPowerSumsPDUWatts(t *testing.T) {
	// 120V*20A + 208V*30A = 2400 + 6240
	sum := CabinetPower([]models.ResolvedDevice{
		pdu(120, 20, 0),
		pdu(208, 30, 0),
	})
	assert.Equal(t, 8640, sum.Power)
	assert.Equal(t, 0, sum.PowerAllocated)
	assert.Equal(t, 8640, sum.PowerAvailable)
}

func TestCabinetPowerAllocation(t *testing.T) {
	sum := CabinetPower([]models.ResolvedDevice{
		pdu(120, 20, 0),
		server(450),
		server(350),
	})
	assert.Equal(t, 2400, sum.Power)
	assert.Equal(t, 800, sum.PowerAllocated)
	assert.Equal(t, 1600, sum.PowerAvailable)
}

func TestCabinetPowerNeverNegative(t *testing.T) {
	sum := CabinetPower([]models.ResolvedDevice{
		pdu(100, 10, 0), // 1000W supply
		server(1500),
	})
	assert.Equal(t, 1000, sum.Power)
	assert.Equal(t, 1500, sum.PowerAllocated)
	assert.Equal(t, 0, sum.PowerAvailable, "headroom clamps at zero")
}

func TestCabinetPowerWithoutPDU(t *testing.T) {
	// A mis-provisioned rack: allocated draw but no power source.
	sum := CabinetPower([]models.ResolvedDevice{server(450)})
	assert.Equal(t, 0, sum.Power)
	assert.Equal(t, 450, sum.PowerAllocated)
	assert.Equal(t, 0, sum.PowerAvailable)
}

func TestCabinetPowerCountsPDUDraw(t *testing.T) {
	// A PDU both supplies power and draws a little itself.
	sum := CabinetPower([]models.ResolvedDevice{pdu(120, 20, 25)})
	assert.Equal(t, 2400, sum.Power)
	assert.Equal(t, 25, sum.PowerAllocated)
	assert.Equal(t, 2375, sum.PowerAvailable)
}

func TestCabinetPowerEmpty(t *testing.T) {
	sum := CabinetPower(nil)
	assert.Zero(t, sum.Power)
	assert.Zero(t, sum.PowerAllocated)
	assert.Zero(t, sum.PowerAvailable)
}
