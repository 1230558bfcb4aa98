package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rackd/rackd/models"
)

// CreateCabinet persists a new cabinet. The datacenter must exist
// (ErrNotFound) and the name must be free (ErrConflict).
func (s *Storage) CreateCabinet(cab *models.Cabinet) error {
	if cab.ID == "" {
		cab.ID = models.NewID()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var dc models.Datacenter
		if err := tx.First(&dc, "id = ?", cab.DatacenterID).Error; err != nil {
			return fmt.Errorf("datacenter %s: %w", cab.DatacenterID, translate(err))
		}
		if err := tx.Create(cab).Error; err != nil {
			return fmt.Errorf("cabinet %q: %w", cab.Name, translate(err))
		}
		s.debugLog("created cabinet %s in datacenter %s", cab.Name, dc.Name)
		return nil
	})
}

// GetCabinet loads a cabinet by id.
func (s *Storage) GetCabinet(id string) (*models.Cabinet, error) {
	var cab models.Cabinet
	if err := s.db.First(&cab, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("cabinet %s: %w", id, translate(err))
	}
	return &cab, nil
}

// ListCabinets returns cabinets ordered by name, optionally filtered by
// datacenter.
func (s *Storage) ListCabinets(datacenterID string) ([]models.Cabinet, error) {
	q := s.db.Order("name")
	if datacenterID != "" {
		q = q.Where("datacenter_id = ?", datacenterID)
	}
	var cabs []models.Cabinet
	if err := q.Find(&cabs).Error; err != nil {
		return nil, err
	}
	return cabs, nil
}

// UpdateCabinet saves changed fields of an existing cabinet. A changed
// datacenter reference must point at an existing datacenter.
func (s *Storage) UpdateCabinet(cab *models.Cabinet) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var dc models.Datacenter
		if err := tx.First(&dc, "id = ?", cab.DatacenterID).Error; err != nil {
			return fmt.Errorf("datacenter %s: %w", cab.DatacenterID, translate(err))
		}
		if err := tx.Save(cab).Error; err != nil {
			return fmt.Errorf("cabinet %s: %w", cab.ID, translate(err))
		}
		return nil
	})
}

// DeleteCabinet removes a cabinet. Its cabinet assignments go with it; the
// devices themselves survive, unplaced.
func (s *Storage) DeleteCabinet(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cab models.Cabinet
		if err := tx.First(&cab, "id = ?", id).Error; err != nil {
			return fmt.Errorf("cabinet %s: %w", id, translate(err))
		}
		// Explicit even though the constraint cascades: assignments are
		// facts about the cabinet.
		if err := tx.Delete(&models.CabinetAssignment{}, "cabinet_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cabinet{}, "id = ?", id).Error
	})
}

// CabinetDevices returns the cabinet's assignments joined with their
// resolved devices, ordered by position. This is the input for all derived
// power and placement figures, queried fresh every time.
func (s *Storage) CabinetDevices(cabinetID string) ([]models.AssignedDevice, error) {
	return cabinetDevices(s.db, cabinetID)
}

func cabinetDevices(tx *gorm.DB, cabinetID string) ([]models.AssignedDevice, error) {
	var assignments []models.CabinetAssignment
	if err := tx.Where("cabinet_id = ?", cabinetID).Order("position").Find(&assignments).Error; err != nil {
		return nil, err
	}

	out := make([]models.AssignedDevice, 0, len(assignments))
	for _, a := range assignments {
		resolved, err := resolveDevice(tx, a.DeviceID)
		if err != nil {
			return nil, err
		}
		out = append(out, models.AssignedDevice{Assignment: a, Device: *resolved})
	}
	return out, nil
}
