package store

import (
	"errors"

	"gorm.io/gorm"

	"fuelogistics/internal/models"
)

type TruckStore struct {
	db *gorm.DB
}

func NewTruckStore(db *gorm.DB) *TruckStore {
	return &TruckStore{db: db}
}

func (s *TruckStore) List() ([]models.Truck, error) {
	trucks := make([]models.Truck, 0)
	if err := s.db.Order("plate ASC").Find(&trucks).Error; err != nil {
		return nil, err
	}
	return trucks, nil
}

func (s *TruckStore) GetByID(id uint) (models.Truck, error) {
	var truck models.Truck
	if err := s.db.First(&truck, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Truck{}, ErrNotFound
		}
		return models.Truck{}, err
	}
	return truck, nil
}

func (s *TruckStore) Create(truck *models.Truck) error {
	return s.db.Create(truck).Error
}

func (s *TruckStore) Save(truck *models.Truck) error {
	return s.db.Save(truck).Error
}

func (s *TruckStore) Delete(id uint) error {
	res := s.db.Delete(&models.Truck{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
