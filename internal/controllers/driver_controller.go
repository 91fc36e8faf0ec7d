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

// DriverController handles driver CRUD. Driver names are copied into trips as
// free text, so edits here never rewrite trip history.
type DriverController struct {
	drivers *store.DriverStore
}

func NewDriverController(drivers *store.DriverStore) *DriverController {
	return &DriverController{drivers: drivers}
}

type createDriverInput struct {
	Name    string `json:"name"`
	License string `json:"license"`
	Phone   string `json:"phone"`
}

func (in createDriverInput) validate() []FieldError {
	var errs []FieldError
	if in.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if in.License == "" {
		errs = append(errs, FieldError{Field: "license", Message: "license is required"})
	}
	if in.Phone == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "phone is required"})
	}
	return errs
}

type updateDriverInput struct {
	Name      *string              `json:"name"`
	License   *string              `json:"license"`
	Phone     *string              `json:"phone"`
	Photo     *models.Attachment   `json:"photo"`
	Documents *[]models.Attachment `json:"documents"`
}

// GET /api/drivers
func (dc *DriverController) ListDrivers(c *gin.Context) {
	drivers, err := dc.drivers.List()
	if err != nil {
		logrus.WithError(err).Error("Error listing drivers.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

// GET /api/drivers/:id
func (dc *DriverController) GetDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	driver, err := dc.drivers.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Driver not found"})
			return
		}
		logrus.WithError(err).WithField("driver_id", id).Error("Error fetching driver.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// POST /api/drivers
func (dc *DriverController) CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	if errs := input.validate(); len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	driver := models.Driver{Name: input.Name, License: input.License, Phone: input.Phone}
	if err := dc.drivers.Create(&driver); err != nil {
		logrus.WithError(err).Error("Error creating driver.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// PUT /api/drivers/:id
func (dc *DriverController) UpdateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}

	driver, err := dc.drivers.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Driver not found"})
			return
		}
		logrus.WithError(err).WithField("driver_id", id).Error("Error fetching driver for update.")
		respondInternalError(c)
		return
	}

	var errs []FieldError
	if input.Name != nil && *input.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name must not be empty"})
	}
	if input.License != nil && *input.License == "" {
		errs = append(errs, FieldError{Field: "license", Message: "license must not be empty"})
	}
	if input.Phone != nil && *input.Phone == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "phone must not be empty"})
	}
	if len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.License != nil {
		driver.License = *input.License
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.Photo != nil {
		raw, err := json.Marshal(*input.Photo)
		if err != nil {
			respondBadBody(c)
			return
		}
		driver.Photo = datatypes.JSON(raw)
	}
	if input.Documents != nil {
		raw, err := json.Marshal(*input.Documents)
		if err != nil {
			respondBadBody(c)
			return
		}
		driver.Documents = datatypes.JSON(raw)
	}

	if err := dc.drivers.Save(&driver); err != nil {
		logrus.WithError(err).WithField("driver_id", id).Error("Error updating driver.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// DELETE /api/drivers/:id
func (dc *DriverController) DeleteDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := dc.drivers.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Driver not found"})
			return
		}
		logrus.WithError(err).WithField("driver_id", id).Error("Error deleting driver.")
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
