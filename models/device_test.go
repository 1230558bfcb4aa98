package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDUWatts(t *testing.T) {
	pdu := &PowerDistributionUnit{Volts: 120, Amps: 20}
	assert.Equal(t, 2400, pdu.Watts())

	// Unset ratings mean no capacity, not an error
	assert.Equal(t, 0, (&PowerDistributionUnit{Volts: 208}).Watts())
	assert.Equal(t, 0, (&PowerDistributionUnit{}).Watts())
}

func TestResolvedDeviceAccessors(t *testing.T) {
	srv := &ResolvedDevice{
		ID:   NewID(),
		Type: DeviceTypeServer,
		Server: &Server{
			DeviceDetails: DeviceDetails{
				Manufacturer: "Dell",
				Model:        "R740",
				Serial:       "SN-1",
				RackUnits:    2,
				Draw:         450,
			},
			Memory: 65536,
			Cores:  32,
		},
	}
	assert.Equal(t, 450, srv.Draw())
	assert.Equal(t, 2, srv.RackUnits())
	assert.Equal(t, "Dell R740", srv.DisplayName())

	_, ok := srv.PortCount()
	assert.False(t, ok, "servers have no ports field")

	netdev := &ResolvedDevice{
		ID:   NewID(),
		Type: DeviceTypeNetworkDevice,
		NetworkDevice: &NetworkDevice{
			DeviceDetails: DeviceDetails{Manufacturer: "Arista", Model: "7050", Serial: "SN-2", RackUnits: 1},
			PortDetails:   PortDetails{Ports: 48},
			Speed:         SpeedTenGigabit,
			Interconnect:  InterconnectTwinax,
		},
	}
	ports, ok := netdev.PortCount()
	require.True(t, ok)
	assert.Equal(t, 48, ports)
}

func TestEnumSymbolicNames(t *testing.T) {
	// Enums serialize by symbolic name, not label.
	cab := Cabinet{
		ID:         NewID(),
		Name:       "cab-1",
		Attachment: AttachmentCageNut95,
		Fasteners:  FastenerUNF1032,
	}
	data, err := json.Marshal(cab)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"attachment":"CAGE_NUT_95"`)
	assert.Contains(t, string(data), `"fasteners":"UNF_10_32"`)

	var parsed Cabinet
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, cab.Attachment, parsed.Attachment)
	assert.Equal(t, cab.Fasteners, parsed.Fasteners)
	assert.Equal(t, "95mm cage nut", parsed.Attachment.Label())
	assert.Equal(t, "UNF 10-32", parsed.Fasteners.Label())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, SpeedFortyGigabit.Valid())
	assert.False(t, NetworkSpeed("HUNDRED_GIGABIT").Valid())
	assert.True(t, OrientationRear.Valid())
	assert.False(t, RackOrientation("SIDEWAYS").Valid())
	assert.True(t, DepthFull.Valid())
	assert.False(t, RackDepth("").Valid())
	assert.True(t, DeviceTypePDU.Valid())
	assert.False(t, DeviceType("blade").Valid())
}
