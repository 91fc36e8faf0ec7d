package store

import (
	"errors"

	"gorm.io/gorm"

	"fuelogistics/internal/models"
)

type DriverStore struct {
	db *gorm.DB
}

func NewDriverStore(db *gorm.DB) *DriverStore {
	return &DriverStore{db: db}
}

func (s *DriverStore) List() ([]models.Driver, error) {
	drivers := make([]models.Driver, 0)
	if err := s.db.Order("name ASC").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *DriverStore) GetByID(id uint) (models.Driver, error) {
	var driver models.Driver
	if err := s.db.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Driver{}, ErrNotFound
		}
		return models.Driver{}, err
	}
	return driver, nil
}

func (s *DriverStore) Create(driver *models.Driver) error {
	return s.db.Create(driver).Error
}

func (s *DriverStore) Save(driver *models.Driver) error {
	return s.db.Save(driver).Error
}

// Delete removes the driver row. Drivers are plain personnel records, not
// soft-cancelled like trips; historical trips keep the driver's name as text.
func (s *DriverStore) Delete(id uint) error {
	res := s.db.Delete(&models.Driver{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
