package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rackd/rackd/models"
)

// CreatePortAssignment records a cable between two device ports. Both
// devices must exist (ErrNotFound); the owning device must be port-bearing
// and the port numbers must be within each device's port count (ErrInvalid).
// A port already carrying a cable fails with ErrConflict through the
// (device_id, device_port) constraint at commit time.
func (s *Storage) CreatePortAssignment(p *models.PortAssignment) error {
	if p.ID == "" {
		p.ID = models.NewID()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := validatePortAssignment(tx, p); err != nil {
			return err
		}
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("port %d on device %s: %w", p.DevicePort, p.DeviceID, translate(err))
		}
		return nil
	})
}

// GetPortAssignment loads a port assignment by id.
func (s *Storage) GetPortAssignment(id string) (*models.PortAssignment, error) {
	var p models.PortAssignment
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("port assignment %s: %w", id, translate(err))
	}
	return &p, nil
}

// ListPortAssignments returns port assignments, optionally filtered by the
// owning device, ordered by device and port.
func (s *Storage) ListPortAssignments(deviceID string) ([]models.PortAssignment, error) {
	q := s.db.Order("device_id, device_port")
	if deviceID != "" {
		q = q.Where("device_id = ?", deviceID)
	}
	var ports []models.PortAssignment
	if err := q.Find(&ports).Error; err != nil {
		return nil, err
	}
	return ports, nil
}

// UpdatePortAssignment re-cables an existing assignment under the same rules
// as creation.
func (s *Storage) UpdatePortAssignment(p *models.PortAssignment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := validatePortAssignment(tx, p); err != nil {
			return err
		}
		if err := tx.Save(p).Error; err != nil {
			return fmt.Errorf("port assignment %s: %w", p.ID, translate(err))
		}
		return nil
	})
}

// DeletePortAssignment removes a cable record.
func (s *Storage) DeletePortAssignment(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var p models.PortAssignment
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return fmt.Errorf("port assignment %s: %w", id, translate(err))
		}
		return tx.Delete(&models.PortAssignment{}, "id = ?", id).Error
	})
}

// DevicePortAssignments returns the cable rows owned by a device, ordered by
// port number.
func (s *Storage) DevicePortAssignments(deviceID string) ([]models.PortAssignment, error) {
	var ports []models.PortAssignment
	err := s.db.Where("device_id = ?", deviceID).Order("device_port").Find(&ports).Error
	if err != nil {
		return nil, err
	}
	return ports, nil
}

// ConnectedLinks returns the devices a device's own ports are cabled to:
// one link per owned port, carrying the owned port number and the resolved
// peer at the far end.
func (s *Storage) ConnectedLinks(deviceID string) ([]models.PortLink, error) {
	ports, err := s.DevicePortAssignments(deviceID)
	if err != nil {
		return nil, err
	}
	links := make([]models.PortLink, 0, len(ports))
	for _, p := range ports {
		peer, err := resolveDevice(s.db, p.ConnectedDeviceID)
		if err != nil {
			return nil, err
		}
		links = append(links, models.PortLink{Port: p.DevicePort, Peer: *peer})
	}
	return links, nil
}

// AttachedLinks returns the reverse view: every cable whose far end is this
// device, carrying the owning device and the port number on it. Feeding
// this through inventory.Uplinks / inventory.PowerFeeds yields the device's
// switches and power strips.
func (s *Storage) AttachedLinks(deviceID string) ([]models.PortLink, error) {
	var rows []models.PortAssignment
	err := s.db.Where("connected_device_id = ?", deviceID).Order("device_port").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	links := make([]models.PortLink, 0, len(rows))
	for _, p := range rows {
		owner, err := resolveDevice(s.db, p.DeviceID)
		if err != nil {
			return nil, err
		}
		links = append(links, models.PortLink{Port: p.DevicePort, Peer: *owner})
	}
	return links, nil
}

func validatePortAssignment(tx *gorm.DB, p *models.PortAssignment) error {
	owner, err := resolveDevice(tx, p.DeviceID)
	if err != nil {
		return err
	}
	peer, err := resolveDevice(tx, p.ConnectedDeviceID)
	if err != nil {
		return err
	}

	ports, ok := owner.PortCount()
	if !ok {
		return fmt.Errorf("device %s (%s) has no ports: %w", owner.ID, owner.Type, ErrInvalid)
	}
	if p.DevicePort < 1 || p.DevicePort > ports {
		return fmt.Errorf("port %d out of range 1..%d on device %s: %w", p.DevicePort, ports, owner.ID, ErrInvalid)
	}

	// Servers carry no port count, so only bound the far end when the
	// peer is port-bearing.
	if peerPorts, ok := peer.PortCount(); ok {
		if p.ConnectedDevicePort < 1 || p.ConnectedDevicePort > peerPorts {
			return fmt.Errorf("port %d out of range 1..%d on device %s: %w",
				p.ConnectedDevicePort, peerPorts, peer.ID, ErrInvalid)
		}
	} else if p.ConnectedDevicePort < 1 {
		return fmt.Errorf("port %d invalid on device %s: %w", p.ConnectedDevicePort, peer.ID, ErrInvalid)
	}

	return nil
}
