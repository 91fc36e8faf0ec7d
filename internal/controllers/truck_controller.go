package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"fuelogistics/internal/models"
	"fuelogistics/internal/store"
)

type TruckController struct {
	trucks *store.TruckStore
}

func NewTruckController(trucks *store.TruckStore) *TruckController {
	return &TruckController{trucks: trucks}
}

type createTruckInput struct {
	Plate      string `json:"plate"`
	TruckModel string `json:"truck_model"`
	Capacity   int    `json:"capacity"`
}

func (in createTruckInput) validate() []FieldError {
	var errs []FieldError
	if in.Plate == "" {
		errs = append(errs, FieldError{Field: "plate", Message: "plate is required"})
	}
	if in.TruckModel == "" {
		errs = append(errs, FieldError{Field: "truck_model", Message: "truck_model is required"})
	}
	if in.Capacity <= 0 {
		errs = append(errs, FieldError{Field: "capacity", Message: "capacity must be positive"})
	}
	return errs
}

type updateTruckInput struct {
	Plate      *string              `json:"plate"`
	TruckModel *string              `json:"truck_model"`
	Capacity   *int                 `json:"capacity"`
	Photo      *models.Attachment   `json:"photo"`
	Documents  *[]models.Attachment `json:"documents"`
}

// GET /api/trucks
func (tc *TruckController) ListTrucks(c *gin.Context) {
	trucks, err := tc.trucks.List()
	if err != nil {
		logrus.WithError(err).Error("Error listing trucks.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trucks": trucks})
}

// GET /api/trucks/:id
func (tc *TruckController) GetTruck(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	truck, err := tc.trucks.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Truck not found"})
			return
		}
		logrus.WithError(err).WithField("truck_id", id).Error("Error fetching truck.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, truck)
}

// POST /api/trucks
func (tc *TruckController) CreateTruck(c *gin.Context) {
	var input createTruckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	if errs := input.validate(); len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	truck := models.Truck{Plate: input.Plate, TruckModel: input.TruckModel, Capacity: input.Capacity}
	if err := tc.trucks.Create(&truck); err != nil {
		logrus.WithError(err).Error("Error creating truck.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, truck)
}

// PUT /api/trucks/:id
func (tc *TruckController) UpdateTruck(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateTruckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}

	truck, err := tc.trucks.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Truck not found"})
			return
		}
		logrus.WithError(err).WithField("truck_id", id).Error("Error fetching truck for update.")
		respondInternalError(c)
		return
	}

	var errs []FieldError
	if input.Plate != nil && *input.Plate == "" {
		errs = append(errs, FieldError{Field: "plate", Message: "plate must not be empty"})
	}
	if input.TruckModel != nil && *input.TruckModel == "" {
		errs = append(errs, FieldError{Field: "truck_model", Message: "truck_model must not be empty"})
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		errs = append(errs, FieldError{Field: "capacity", Message: "capacity must be positive"})
	}
	if len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	if input.Plate != nil {
		truck.Plate = *input.Plate
	}
	if input.TruckModel != nil {
		truck.TruckModel = *input.TruckModel
	}
	if input.Capacity != nil {
		truck.Capacity = *input.Capacity
	}
	if input.Photo != nil {
		raw, err := json.Marshal(*input.Photo)
		if err != nil {
			respondBadBody(c)
			return
		}
		truck.Photo = datatypes.JSON(raw)
	}
	if input.Documents != nil {
		raw, err := json.Marshal(*input.Documents)
		if err != nil {
			respondBadBody(c)
			return
		}
		truck.Documents = datatypes.JSON(raw)
	}

	if err := tc.trucks.Save(&truck); err != nil {
		logrus.WithError(err).WithField("truck_id", id).Error("Error updating truck.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, truck)
}

// DELETE /api/trucks/:id
func (tc *TruckController) DeleteTruck(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := tc.trucks.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Truck not found"})
			return
		}
		logrus.WithError(err).WithField("truck_id", id).Error("Error deleting truck.")
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
