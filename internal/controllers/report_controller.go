package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fuelogistics/internal/models"
	"fuelogistics/internal/store"
)

type ReportController struct {
	reports *store.ReportStore
	trips   *store.TripStore
}

func NewReportController(reports *store.ReportStore, trips *store.TripStore) *ReportController {
	return &ReportController{reports: reports, trips: trips}
}

type createReportInput struct {
	TripID  uint   `json:"trip_id"`
	Details string `json:"details"`
}

// GET /api/reports
func (rc *ReportController) ListReports(c *gin.Context) {
	reports, err := rc.reports.List()
	if err != nil {
		logrus.WithError(err).Error("Error listing reports.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// POST /api/reports
func (rc *ReportController) CreateReport(c *gin.Context) {
	var input createReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}

	var errs []FieldError
	if input.TripID == 0 {
		errs = append(errs, FieldError{Field: "trip_id", Message: "trip_id is required"})
	}
	if input.Details == "" {
		errs = append(errs, FieldError{Field: "details", Message: "details is required"})
	}
	if len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	// Reports must point at a real trip.
	if _, err := rc.trips.GetByID(input.TripID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Trip not found"})
			return
		}
		logrus.WithError(err).WithField("trip_id", input.TripID).Error("Error fetching trip for report.")
		respondInternalError(c)
		return
	}

	report := models.Report{TripID: input.TripID, Details: input.Details}
	if err := rc.reports.Create(&report); err != nil {
		logrus.WithError(err).Error("Error creating report.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, report)
}
