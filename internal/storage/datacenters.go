package storage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rackd/rackd/models"
)

// CreateDatacenter persists a new datacenter. Duplicate names or duplicate
// (vendor, address) pairs fail with ErrConflict.
func (s *Storage) CreateDatacenter(dc *models.Datacenter) error {
	if dc.ID == "" {
		dc.ID = models.NewID()
	}
	if err := s.db.Create(dc).Error; err != nil {
		return fmt.Errorf("datacenter %q: %w", dc.Name, translate(err))
	}
	s.debugLog("created datacenter %s (%s)", dc.Name, dc.ID)
	return nil
}

// GetDatacenter loads a datacenter by id.
func (s *Storage) GetDatacenter(id string) (*models.Datacenter, error) {
	var dc models.Datacenter
	if err := s.db.First(&dc, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("datacenter %s: %w", id, translate(err))
	}
	return &dc, nil
}

// ListDatacenters returns all datacenters ordered by name.
func (s *Storage) ListDatacenters() ([]models.Datacenter, error) {
	var dcs []models.Datacenter
	if err := s.db.Order("name").Find(&dcs).Error; err != nil {
		return nil, err
	}
	return dcs, nil
}

// UpdateDatacenter saves changed fields of an existing datacenter.
func (s *Storage) UpdateDatacenter(dc *models.Datacenter) error {
	if err := s.db.Save(dc).Error; err != nil {
		return fmt.Errorf("datacenter %s: %w", dc.ID, translate(err))
	}
	return nil
}

// DeleteDatacenter removes a datacenter. Deletion is blocked with
// ErrConflict while cabinets still reference it: an inventory of physical
// assets never cascades a facility away silently.
func (s *Storage) DeleteDatacenter(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var dc models.Datacenter
		if err := tx.First(&dc, "id = ?", id).Error; err != nil {
			return fmt.Errorf("datacenter %s: %w", id, translate(err))
		}

		var cabinets int64
		if err := tx.Model(&models.Cabinet{}).Where("datacenter_id = ?", id).Count(&cabinets).Error; err != nil {
			return err
		}
		if cabinets > 0 {
			return fmt.Errorf("datacenter %s still has %d cabinets: %w", id, cabinets, ErrConflict)
		}

		return tx.Delete(&models.Datacenter{}, "id = ?", id).Error
	})
}
