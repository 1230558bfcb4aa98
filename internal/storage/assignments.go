package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rackd/rackd/internal/inventory"
	"github.com/rackd/rackd/models"
)

// CreateCabinetAssignment places a device into a cabinet. The cabinet and
// device must exist (ErrNotFound). A device already placed elsewhere fails
// with ErrConflict through the unique device_id constraint; the check is
// never done ahead of the insert, so concurrent claims are arbitrated by the
// store. When enforceOverlap is set, a rack-space collision also fails with
// ErrConflict.
func (s *Storage) CreateCabinetAssignment(a *models.CabinetAssignment, enforceOverlap bool) error {
	if a.ID == "" {
		a.ID = models.NewID()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Cabinet{}, "id = ?", a.CabinetID).Error; err != nil {
			return fmt.Errorf("cabinet %s: %w", a.CabinetID, translate(err))
		}
		device, err := resolveDevice(tx, a.DeviceID)
		if err != nil {
			return err
		}

		if enforceOverlap {
			if err := checkOverlap(tx, a, device.RackUnits()); err != nil {
				return err
			}
		}

		if err := tx.Create(a).Error; err != nil {
			return fmt.Errorf("assignment for device %s: %w", a.DeviceID, translate(err))
		}
		return nil
	})
}

// GetCabinetAssignment loads an assignment by id.
func (s *Storage) GetCabinetAssignment(id string) (*models.CabinetAssignment, error) {
	var a models.CabinetAssignment
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("cabinet assignment %s: %w", id, translate(err))
	}
	return &a, nil
}

// ListCabinetAssignments returns assignments ordered by position, optionally
// filtered by cabinet.
func (s *Storage) ListCabinetAssignments(cabinetID string) ([]models.CabinetAssignment, error) {
	q := s.db.Order("position")
	if cabinetID != "" {
		q = q.Where("cabinet_id = ?", cabinetID)
	}
	var assignments []models.CabinetAssignment
	if err := q.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpdateCabinetAssignment repositions an existing assignment, applying the
// same existence and overlap rules as creation.
func (s *Storage) UpdateCabinetAssignment(a *models.CabinetAssignment, enforceOverlap bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Cabinet{}, "id = ?", a.CabinetID).Error; err != nil {
			return fmt.Errorf("cabinet %s: %w", a.CabinetID, translate(err))
		}
		device, err := resolveDevice(tx, a.DeviceID)
		if err != nil {
			return err
		}

		if enforceOverlap {
			if err := checkOverlap(tx, a, device.RackUnits()); err != nil {
				return err
			}
		}

		if err := tx.Save(a).Error; err != nil {
			return fmt.Errorf("assignment %s: %w", a.ID, translate(err))
		}
		return nil
	})
}

// DeleteCabinetAssignment unplaces a device.
func (s *Storage) DeleteCabinetAssignment(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var a models.CabinetAssignment
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return fmt.Errorf("cabinet assignment %s: %w", id, translate(err))
		}
		return tx.Delete(&models.CabinetAssignment{}, "id = ?", id).Error
	})
}

// checkOverlap validates the candidate's rack-space claim against every
// other placement in the same cabinet, inside the caller's transaction.
func checkOverlap(tx *gorm.DB, candidate *models.CabinetAssignment, height int) error {
	assigned, err := cabinetDevices(tx, candidate.CabinetID)
	if err != nil {
		return err
	}

	existing := make([]inventory.Placement, 0, len(assigned))
	for _, ad := range assigned {
		existing = append(existing, inventory.Placement{
			AssignmentID: ad.Assignment.ID,
			Position:     ad.Assignment.Position,
			RackUnits:    ad.Device.RackUnits(),
			Orientation:  ad.Assignment.Orientation,
			Depth:        ad.Assignment.Depth,
		})
	}

	err = inventory.CheckPlacement(existing, inventory.Placement{
		AssignmentID: candidate.ID,
		Position:     candidate.Position,
		RackUnits:    height,
		Orientation:  candidate.Orientation,
		Depth:        candidate.Depth,
	})
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrConflict)
	}
	return nil
}
