package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rackd/rackd/models"
)

// Device creation writes two rows in one transaction: the identity row
// carrying the discriminator, and the variant row sharing its primary key.
// Duplicate (manufacturer, model, serial) triples fail with ErrConflict.

// CreateServer persists a new server and its device identity.
func (s *Storage) CreateServer(srv *models.Server) error {
	if srv.DeviceID == "" {
		srv.DeviceID = models.NewID()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Device{ID: srv.DeviceID, Type: models.DeviceTypeServer}).Error; err != nil {
			return fmt.Errorf("device %s: %w", srv.DeviceID, translate(err))
		}
		if err := tx.Create(srv).Error; err != nil {
			return fmt.Errorf("server %s: %w", srv.DisplayName(), translate(err))
		}
		return nil
	})
}

// CreatePDU persists a new power distribution unit and its device identity.
func (s *Storage) CreatePDU(pdu *models.PowerDistributionUnit) error {
	if pdu.DeviceID == "" {
		pdu.DeviceID = models.NewID()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Device{ID: pdu.DeviceID, Type: models.DeviceTypePDU}).Error; err != nil {
			return fmt.Errorf("device %s: %w", pdu.DeviceID, translate(err))
		}
		if err := tx.Create(pdu).Error; err != nil {
			return fmt.Errorf("pdu %s: %w", pdu.DisplayName(), translate(err))
		}
		return nil
	})
}

// CreateNetworkDevice persists a new network device and its device identity.
func (s *Storage) CreateNetworkDevice(nd *models.NetworkDevice) error {
	if nd.DeviceID == "" {
		nd.DeviceID = models.NewID()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Device{ID: nd.DeviceID, Type: models.DeviceTypeNetworkDevice}).Error; err != nil {
			return fmt.Errorf("device %s: %w", nd.DeviceID, translate(err))
		}
		if err := tx.Create(nd).Error; err != nil {
			return fmt.Errorf("network device %s: %w", nd.DisplayName(), translate(err))
		}
		return nil
	})
}

// GetServer loads a server variant by device id.
func (s *Storage) GetServer(id string) (*models.Server, error) {
	var srv models.Server
	if err := s.db.First(&srv, "device_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("server %s: %w", id, translate(err))
	}
	return &srv, nil
}

// GetPDU loads a PDU variant by device id.
func (s *Storage) GetPDU(id string) (*models.PowerDistributionUnit, error) {
	var pdu models.PowerDistributionUnit
	if err := s.db.First(&pdu, "device_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("pdu %s: %w", id, translate(err))
	}
	return &pdu, nil
}

// GetNetworkDevice loads a network device variant by device id.
func (s *Storage) GetNetworkDevice(id string) (*models.NetworkDevice, error) {
	var nd models.NetworkDevice
	if err := s.db.First(&nd, "device_id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("network device %s: %w", id, translate(err))
	}
	return &nd, nil
}

// ListServers returns all servers ordered by manufacturer and model.
func (s *Storage) ListServers() ([]models.Server, error) {
	var srvs []models.Server
	if err := s.db.Order("manufacturer, model, serial").Find(&srvs).Error; err != nil {
		return nil, err
	}
	return srvs, nil
}

// ListPDUs returns all power distribution units.
func (s *Storage) ListPDUs() ([]models.PowerDistributionUnit, error) {
	var pdus []models.PowerDistributionUnit
	if err := s.db.Order("manufacturer, model, serial").Find(&pdus).Error; err != nil {
		return nil, err
	}
	return pdus, nil
}

// ListNetworkDevices returns all network devices.
func (s *Storage) ListNetworkDevices() ([]models.NetworkDevice, error) {
	var nds []models.NetworkDevice
	if err := s.db.Order("manufacturer, model, serial").Find(&nds).Error; err != nil {
		return nil, err
	}
	return nds, nil
}

// UpdateServer saves changed fields of an existing server.
func (s *Storage) UpdateServer(srv *models.Server) error {
	if err := s.db.Save(srv).Error; err != nil {
		return fmt.Errorf("server %s: %w", srv.DeviceID, translate(err))
	}
	return nil
}

// UpdatePDU saves changed fields of an existing PDU.
func (s *Storage) UpdatePDU(pdu *models.PowerDistributionUnit) error {
	if err := s.db.Save(pdu).Error; err != nil {
		return fmt.Errorf("pdu %s: %w", pdu.DeviceID, translate(err))
	}
	return nil
}

// UpdateNetworkDevice saves changed fields of an existing network device.
func (s *Storage) UpdateNetworkDevice(nd *models.NetworkDevice) error {
	if err := s.db.Save(nd).Error; err != nil {
		return fmt.Errorf("network device %s: %w", nd.DeviceID, translate(err))
	}
	return nil
}

// DeleteServer removes a server, its identity row, and any assignments or
// cables referencing it.
func (s *Storage) DeleteServer(id string) error {
	return s.deleteDevice(id, models.DeviceTypeServer)
}

// DeletePDU removes a PDU, its identity row, and any assignments or cables
// referencing it.
func (s *Storage) DeletePDU(id string) error {
	return s.deleteDevice(id, models.DeviceTypePDU)
}

// DeleteNetworkDevice removes a network device, its identity row, and any
// assignments or cables referencing it.
func (s *Storage) DeleteNetworkDevice(id string) error {
	return s.deleteDevice(id, models.DeviceTypeNetworkDevice)
}

func (s *Storage) deleteDevice(id string, t models.DeviceType) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var dev models.Device
		if err := tx.First(&dev, "id = ?", id).Error; err != nil {
			return fmt.Errorf("device %s: %w", id, translate(err))
		}
		if dev.Type != t {
			return fmt.Errorf("device %s is a %s: %w", id, dev.Type, ErrNotFound)
		}
		// The variant row, cabinet assignment and port assignments all
		// cascade from the identity row.
		return tx.Delete(&models.Device{}, "id = ?", id).Error
	})
}

// ResolveDevice resolves a device id to its concrete variant. A missing id
// is ErrNotFound; a discriminator with no matching variant row is
// ErrCorrupt and must be treated as an internal failure, not user error.
func (s *Storage) ResolveDevice(id string) (*models.ResolvedDevice, error) {
	return resolveDevice(s.db, id)
}

func resolveDevice(tx *gorm.DB, id string) (*models.ResolvedDevice, error) {
	var dev models.Device
	if err := tx.First(&dev, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("device %s: %w", id, translate(err))
	}

	resolved := &models.ResolvedDevice{ID: dev.ID, Type: dev.Type}
	var err error
	switch dev.Type {
	case models.DeviceTypeServer:
		var srv models.Server
		err = tx.First(&srv, "device_id = ?", dev.ID).Error
		resolved.Server = &srv
	case models.DeviceTypePDU:
		var pdu models.PowerDistributionUnit
		err = tx.First(&pdu, "device_id = ?", dev.ID).Error
		resolved.PDU = &pdu
	case models.DeviceTypeNetworkDevice:
		var nd models.NetworkDevice
		err = tx.First(&nd, "device_id = ?", dev.ID).Error
		resolved.NetworkDevice = &nd
	default:
		return nil, fmt.Errorf("device %s has unknown type %q: %w", dev.ID, dev.Type, ErrCorrupt)
	}
	if err != nil {
		if translate(err) == ErrNotFound {
			return nil, fmt.Errorf("device %s (%s): %w", dev.ID, dev.Type, ErrCorrupt)
		}
		return nil, err
	}
	return resolved, nil
}

// DeviceLocation returns the cabinet and position a device currently sits
// in, or (nil, 0) when the device is unassigned.
func (s *Storage) DeviceLocation(deviceID string) (*models.Cabinet, int, error) {
	var a models.CabinetAssignment
	err := s.db.First(&a, "device_id = ?", deviceID).Error
	if err != nil {
		if translate(err) == ErrNotFound {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	var cab models.Cabinet
	if err := s.db.First(&cab, "id = ?", a.CabinetID).Error; err != nil {
		return nil, 0, translate(err)
	}
	return &cab, a.Position, nil
}
