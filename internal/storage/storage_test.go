package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rackd/rackd/internal/config"
	"github.com/rackd/rackd/models"
)

var testDBCounter int

// newTestStorage opens a fresh in-memory sqlite database per test.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	testDBCounter++
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DSN:          fmt.Sprintf("file:storage_test_%d?mode=memory&cache=shared", testDBCounter),
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}
	store, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seedDatacenter(t *testing.T, s *Storage, name string) *models.Datacenter {
	t.Helper()
	dc := &models.Datacenter{
		Name:     name,
		Vendor:   "Equinix",
		Address:  name + " street",
		NOCPhone: "+15551234567",
	}
	require.NoError(t, s.CreateDatacenter(dc))
	return dc
}

func seedCabinet(t *testing.T, s *Storage, dc *models.Datacenter, name string) *models.Cabinet {
	t.Helper()
	cab := &models.Cabinet{
		Name:         name,
		DatacenterID: dc.ID,
		RackUnits:    42,
		Depth:        42.5,
		Width:        19,
		Attachment:   models.AttachmentCageNut95,
		Fasteners:    models.FastenerUNF1032,
	}
	require.NoError(t, s.CreateCabinet(cab))
	return cab
}

func seedServer(t *testing.T, s *Storage, serial string, units, draw int) *models.Server {
	t.Helper()
	srv := &models.Server{
		DeviceDetails: models.DeviceDetails{
			Manufacturer: "Dell",
			Model:        "R740",
			Serial:       serial,
			RackUnits:    units,
			Draw:         draw,
		},
		Memory: 65536,
		Cores:  32,
	}
	require.NoError(t, s.CreateServer(srv))
	return srv
}

func seedPDU(t *testing.T, s *Storage, serial string, ports, volts, amps int) *models.PowerDistributionUnit {
	t.Helper()
	pdu := &models.PowerDistributionUnit{
		DeviceDetails: models.DeviceDetails{
			Manufacturer: "APC",
			Model:        "AP8853",
			Serial:       serial,
			RackUnits:    0,
		},
		PortDetails: models.PortDetails{Ports: ports},
		Volts:       volts,
		Amps:        amps,
	}
	require.NoError(t, s.CreatePDU(pdu))
	return pdu
}

func TestDatacenterUniqueness(t *testing.T) {
	s := newTestStorage(t)
	seedDatacenter(t, s, "ams1")

	dup := &models.Datacenter{Name: "ams1", Vendor: "Other", Address: "elsewhere", NOCPhone: "1"}
	err := s.CreateDatacenter(dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// Same (vendor, address) pair is also rejected.
	pair := &models.Datacenter{Name: "ams2", Vendor: "Equinix", Address: "ams1 street", NOCPhone: "1"}
	err = s.CreateDatacenter(pair)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDatacenterDeleteBlockedByCabinets(t *testing.T) {
	s := newTestStorage(t)
	dc := seedDatacenter(t, s, "ams1")
	cab := seedCabinet(t, s, dc, "cab-1")

	err := s.DeleteDatacenter(dc.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, s.DeleteCabinet(cab.ID))
	require.NoError(t, s.DeleteDatacenter(dc.ID))

	_, err = s.GetDatacenter(dc.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCabinetRequiresDatacenter(t *testing.T) {
	s := newTestStorage(t)
	cab := &models.Cabinet{
		Name:         "cab-1",
		DatacenterID: models.NewID(),
		RackUnits:    42,
		Depth:        42.5,
		Width:        19,
		Attachment:   models.AttachmentOther,
		Fasteners:    models.FastenerOther,
	}
	err := s.CreateCabinet(cab)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerIdentityTripleUnique(t *testing.T) {
	s := newTestStorage(t)
	seedServer(t, s, "SN-1", 2, 450)

	dup := &models.Server{
		DeviceDetails: models.DeviceDetails{
			Manufacturer: "Dell", Model: "R740", Serial: "SN-1", RackUnits: 2,
		},
		Memory: 1, Cores: 1,
	}
	err := s.CreateServer(dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestResolveDevice(t *testing.T) {
	s := newTestStorage(t)
	srv := seedServer(t, s, "SN-1", 2, 450)
	pdu := seedPDU(t, s, "SN-2", 24, 120, 20)

	resolved, err := s.ResolveDevice(srv.DeviceID)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceTypeServer, resolved.Type)
	require.NotNil(t, resolved.Server)
	assert.Equal(t, 32, resolved.Server.Cores)

	resolved, err = s.ResolveDevice(pdu.DeviceID)
	require.NoError(t, err)
	assert.Equal(t, models.DeviceTypePDU, resolved.Type)
	require.NotNil(t, resolved.PDU)
	assert.Equal(t, 2400, resolved.PDU.Watts())

	_, err = s.ResolveDevice(models.NewID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveDeviceCorruptDiscriminator(t *testing.T) {
	s := newTestStorage(t)
	// An identity row pointing at a variant table with no matching row.
	id := models.NewID()
	require.NoError(t, s.db.Exec(
		"INSERT INTO devices (id, type) VALUES (?, ?)", id, "server",
	).Error)

	_, err := s.ResolveDevice(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestCabinetAssignmentOnePlacementPerDevice(t *testing.T) {
	s := newTestStorage(t)
	dc := seedDatacenter(t, s, "ams1")
	cab1 := seedCabinet(t, s, dc, "cab-1")
	cab2 := seedCabinet(t, s, dc, "cab-2")
	srv := seedServer(t, s, "SN-1", 2, 450)

	first := &models.CabinetAssignment{
		CabinetID:   cab1.ID,
		DeviceID:    srv.DeviceID,
		Position:    1,
		Orientation: models.OrientationFront,
		Depth:       models.DepthFull,
	}
	require.NoError(t, s.CreateCabinetAssignment(first, false))

	second := &models.CabinetAssignment{
		CabinetID:   cab2.ID,
		DeviceID:    srv.DeviceID,
		Position:    10,
		Orientation: models.OrientationFront,
		Depth:       models.DepthFull,
	}
	err := s.CreateCabinetAssignment(second, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// Removing the first placement frees the device.
	require.NoError(t, s.DeleteCabinetAssignment(first.ID))
	second.ID = ""
	require.NoError(t, s.CreateCabinetAssignment(second, false))
}

func TestCabinetAssignmentMissingTargets(t *testing.T) {
	s := newTestStorage(t)
	dc := seedDatacenter(t, s, "ams1")
	cab := seedCabinet(t, s, dc, "cab-1")
	srv := seedServer(t, s, "SN-1", 2, 450)

	err := s.CreateCabinetAssignment(&models.CabinetAssignment{
		CabinetID: models.NewID(), DeviceID: srv.DeviceID,
		Position: 1, Orientation: models.OrientationFront, Depth: models.DepthFull,
	}, false)
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.CreateCabinetAssignment(&models.CabinetAssignment{
		CabinetID: cab.ID, DeviceID: models.NewID(),
		Position: 1, Orientation: models.OrientationFront, Depth: models.DepthFull,
	}, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCabinetAssignmentOverlapPolicy(t *testing.T) {
	s := newTestStorage(t)
	dc := seedDatacenter(t, s, "ams1")
	cab := seedCabinet(t, s, dc, "cab-1")
	srv1 := seedServer(t, s, "SN-1", 4, 450) // units 1-4
	srv2 := seedServer(t, s, "SN-2", 2, 350)

	require.NoError(t, s.CreateCabinetAssignment(&models.CabinetAssignment{
		CabinetID: cab.ID, DeviceID: srv1.DeviceID,
		Position: 1, Orientation: models.OrientationFront, Depth: models.DepthFull,
	}, true))

	colliding := &models.CabinetAssignment{
		CabinetID: cab.ID, DeviceID: srv2.DeviceID,
		Position: 4, Orientation: models.OrientationFront, Depth: models.DepthFull,
	}
	err := s.CreateCabinetAssignment(colliding, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// With enforcement off the same placement is accepted (observed
	// legacy behavior).
	colliding.ID = ""
	require.NoError(t, s.CreateCabinetAssignment(colliding, false))
}

func TestCabinetDeleteCascadesAssignments(t *testing.T) {
	s := newTestStorage(t)
	dc := seedDatacenter(t, s, "ams1")
	cab := seedCabinet(t, s, dc, "cab-1")
	srv := seedServer(t, s, "SN-1", 2, 450)

	a := &models.CabinetAssignment{
		CabinetID: cab.ID, DeviceID: srv.DeviceID,
		Position: 1, Orientation: models.OrientationFront, Depth: models.DepthFull,
	}
	require.NoError(t, s.CreateCabinetAssignment(a, false))

	require.NoError(t, s.DeleteCabinet(cab.ID))

	_, err := s.GetCabinetAssignment(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// The device survives, unplaced.
	_, err = s.ResolveDevice(srv.DeviceID)
	assert.NoError(t, err)
}

func TestPortAssignmentUniquePerPort(t *testing.T) {
	s := newTestStorage(t)
	pdu := seedPDU(t, s, "SN-1", 24, 120, 20)
	srv1 := seedServer(t, s, "SN-2", 2, 450)
	srv2 := seedServer(t, s, "SN-3", 2, 350)

	require.NoError(t, s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: pdu.DeviceID, DevicePort: 1,
		ConnectedDeviceID: srv1.DeviceID, ConnectedDevicePort: 1,
	}))

	err := s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: pdu.DeviceID, DevicePort: 1,
		ConnectedDeviceID: srv2.DeviceID, ConnectedDevicePort: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// A free port on the same device is fine.
	require.NoError(t, s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: pdu.DeviceID, DevicePort: 2,
		ConnectedDeviceID: srv2.DeviceID, ConnectedDevicePort: 1,
	}))
}

func TestPortAssignmentValidation(t *testing.T) {
	s := newTestStorage(t)
	pdu := seedPDU(t, s, "SN-1", 8, 120, 20)
	srv := seedServer(t, s, "SN-2", 2, 450)

	// Port beyond the device's port count.
	err := s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: pdu.DeviceID, DevicePort: 9,
		ConnectedDeviceID: srv.DeviceID, ConnectedDevicePort: 1,
	})
	assert.ErrorIs(t, err, ErrInvalid)

	// Servers cannot own a cable record: they have no port count.
	err = s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: srv.DeviceID, DevicePort: 1,
		ConnectedDeviceID: pdu.DeviceID, ConnectedDevicePort: 1,
	})
	assert.ErrorIs(t, err, ErrInvalid)

	// Missing far end.
	err = s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: pdu.DeviceID, DevicePort: 1,
		ConnectedDeviceID: models.NewID(), ConnectedDevicePort: 1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkViews(t *testing.T) {
	s := newTestStorage(t)
	pdu := seedPDU(t, s, "SN-1", 24, 120, 20)
	srv := seedServer(t, s, "SN-2", 2, 450)

	nd := &models.NetworkDevice{
		DeviceDetails: models.DeviceDetails{
			Manufacturer: "Arista", Model: "7050", Serial: "SN-3", RackUnits: 1,
		},
		PortDetails:  models.PortDetails{Ports: 48},
		Speed:        models.SpeedTenGigabit,
		Interconnect: models.InterconnectTwinax,
	}
	require.NoError(t, s.CreateNetworkDevice(nd))

	require.NoError(t, s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: pdu.DeviceID, DevicePort: 3,
		ConnectedDeviceID: srv.DeviceID, ConnectedDevicePort: 1,
	}))
	require.NoError(t, s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: nd.DeviceID, DevicePort: 17,
		ConnectedDeviceID: srv.DeviceID, ConnectedDevicePort: 1,
	}))

	// From the PDU's side: its own cabling.
	connected, err := s.ConnectedLinks(pdu.DeviceID)
	require.NoError(t, err)
	require.Len(t, connected, 1)
	assert.Equal(t, 3, connected[0].Port)
	assert.Equal(t, srv.DeviceID, connected[0].Peer.ID)

	// From the server's side: the reverse view.
	attached, err := s.AttachedLinks(srv.DeviceID)
	require.NoError(t, err)
	require.Len(t, attached, 2)

	types := []models.DeviceType{attached[0].Peer.Type, attached[1].Peer.Type}
	assert.Contains(t, types, models.DeviceTypePDU)
	assert.Contains(t, types, models.DeviceTypeNetworkDevice)
}

func TestDeleteDeviceCascades(t *testing.T) {
	s := newTestStorage(t)
	dc := seedDatacenter(t, s, "ams1")
	cab := seedCabinet(t, s, dc, "cab-1")
	pdu := seedPDU(t, s, "SN-1", 24, 120, 20)
	srv := seedServer(t, s, "SN-2", 2, 450)

	require.NoError(t, s.CreateCabinetAssignment(&models.CabinetAssignment{
		CabinetID: cab.ID, DeviceID: srv.DeviceID,
		Position: 1, Orientation: models.OrientationFront, Depth: models.DepthFull,
	}, false))
	require.NoError(t, s.CreatePortAssignment(&models.PortAssignment{
		DeviceID: pdu.DeviceID, DevicePort: 1,
		ConnectedDeviceID: srv.DeviceID, ConnectedDevicePort: 1,
	}))

	require.NoError(t, s.DeleteServer(srv.DeviceID))

	_, err := s.GetServer(srv.DeviceID)
	assert.ErrorIs(t, err, ErrNotFound)

	assignments, err := s.ListCabinetAssignments(cab.ID)
	require.NoError(t, err)
	assert.Empty(t, assignments)

	ports, err := s.DevicePortAssignments(pdu.DeviceID)
	require.NoError(t, err)
	assert.Empty(t, ports, "cables to the deleted device are gone")
}

func TestDeleteDeviceWrongVariant(t *testing.T) {
	s := newTestStorage(t)
	srv := seedServer(t, s, "SN-1", 2, 450)

	err := s.DeletePDU(srv.DeviceID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeviceLocation(t *testing.T) {
	s := newTestStorage(t)
	dc := seedDatacenter(t, s, "ams1")
	cab := seedCabinet(t, s, dc, "cab-1")
	srv := seedServer(t, s, "SN-1", 2, 450)

	gotCab, pos, err := s.DeviceLocation(srv.DeviceID)
	require.NoError(t, err)
	assert.Nil(t, gotCab)
	assert.Zero(t, pos)

	require.NoError(t, s.CreateCabinetAssignment(&models.CabinetAssignment{
		CabinetID: cab.ID, DeviceID: srv.DeviceID,
		Position: 12, Orientation: models.OrientationFront, Depth: models.DepthFull,
	}, false))

	gotCab, pos, err = s.DeviceLocation(srv.DeviceID)
	require.NoError(t, err)
	require.NotNil(t, gotCab)
	assert.Equal(t, cab.Name, gotCab.Name)
	assert.Equal(t, 12, pos)
}
