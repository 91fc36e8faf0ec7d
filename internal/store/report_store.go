package store

import (
	"gorm.io/gorm"

	"fuelogistics/internal/models"
)

type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

// List returns every report with its trip preloaded, newest first.
func (s *ReportStore) List() ([]models.Report, error) {
	reports := make([]models.Report, 0)
	if err := s.db.Preload("Trip").Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportStore) Create(report *models.Report) error {
	return s.db.Create(report).Error
}
