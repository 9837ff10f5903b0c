package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"healthmate/internal/apperr"
	"healthmate/internal/models"
	"healthmate/internal/repository"
	"healthmate/internal/services"
	"healthmate/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxNotesLength = 1000

// StatsProvider computes the vitals summary for a lookback window.
type StatsProvider interface {
	Stats(ctx context.Context, userID uuid.UUID, days int) (*services.VitalsStats, error)
}

// vitalColumns pairs each metric's JSON name with its column.
var vitalColumns = []struct{ field, column string }{
	{"bloodPressureSystolic", "blood_pressure_systolic"},
	{"bloodPressureDiastolic", "blood_pressure_diastolic"},
	{"bloodSugar", "blood_sugar"},
	{"weight", "weight"},
	{"temperature", "temperature"},
	{"heartRate", "heart_rate"},
}

type VitalsCreateRequest struct {
	VitalDate              string   `json:"vitalDate" binding:"required" example:"2024-03-01T08:30:00Z"`
	BloodPressureSystolic  *float64 `json:"bloodPressureSystolic" example:"120"`
	BloodPressureDiastolic *float64 `json:"bloodPressureDiastolic" example:"80"`
	BloodSugar             *float64 `json:"bloodSugar" example:"95"`
	Weight                 *float64 `json:"weight" example:"70.5"`
	Temperature            *float64 `json:"temperature" example:"36.8"`
	HeartRate              *float64 `json:"heartRate" example:"72"`
	Notes                  *string  `json:"notes" example:"After breakfast"`
}

func (r VitalsCreateRequest) metrics() map[string]*float64 {
	return map[string]*float64{
		"bloodPressureSystolic":  r.BloodPressureSystolic,
		"bloodPressureDiastolic": r.BloodPressureDiastolic,
		"bloodSugar":             r.BloodSugar,
		"weight":                 r.Weight,
		"temperature":            r.Temperature,
		"heartRate":              r.HeartRate,
	}
}

// VitalsUpdateRequest changes only the keys present; null clears a metric.
type VitalsUpdateRequest struct {
	VitalDate              models.Optional[string]  `json:"vitalDate" swaggertype:"string"`
	BloodPressureSystolic  models.Optional[float64] `json:"bloodPressureSystolic" swaggertype:"number"`
	BloodPressureDiastolic models.Optional[float64] `json:"bloodPressureDiastolic" swaggertype:"number"`
	BloodSugar             models.Optional[float64] `json:"bloodSugar" swaggertype:"number"`
	Weight                 models.Optional[float64] `json:"weight" swaggertype:"number"`
	Temperature            models.Optional[float64] `json:"temperature" swaggertype:"number"`
	HeartRate              models.Optional[float64] `json:"heartRate" swaggertype:"number"`
	Notes                  models.Optional[string]  `json:"notes" swaggertype:"string"`
}

func (r VitalsUpdateRequest) metrics() map[string]models.Optional[float64] {
	return map[string]models.Optional[float64]{
		"bloodPressureSystolic":  r.BloodPressureSystolic,
		"bloodPressureDiastolic": r.BloodPressureDiastolic,
		"bloodSugar":             r.BloodSugar,
		"weight":                 r.Weight,
		"temperature":            r.Temperature,
		"heartRate":              r.HeartRate,
	}
}

type VitalsListResponse struct {
	Vitals      []models.Vitals `json:"vitals"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int64           `json:"total"`
}

type VitalsController struct {
	Responder
	vitals repository.VitalsRepository
	stats  StatsProvider
}

func NewVitalsController(vitals repository.VitalsRepository, stats StatsProvider, r Responder) *VitalsController {
	return &VitalsController{Responder: r, vitals: vitals, stats: stats}
}

func checkRange(field string, v float64) error {
	rng, ok := models.VitalRanges[field]
	if ok && !rng.Contains(v) {
		return apperr.Validation(fmt.Sprintf("%s must be between %g and %g", field, rng.Min, rng.Max))
	}
	return nil
}

func cleanNotes(raw string) (*string, error) {
	notes := strings.TrimSpace(raw)
	if notes == "" {
		return nil, nil
	}
	if len([]rune(notes)) > maxNotesLength {
		return nil, apperr.Validation(fmt.Sprintf("Notes must be at most %d characters", maxNotesLength))
	}
	return &notes, nil
}

// CreateVitals godoc
// @Summary Record vitals
// @Description Any subset of metrics may be supplied
// @Tags vitals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vitals body VitalsCreateRequest true "Vitals"
// @Success 201 {object} map[string]interface{} "Vitals recorded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /vitals [post]
func (vc *VitalsController) CreateVitals(c *gin.Context) {
	user, ok := vc.currentUser(c)
	if !ok {
		return
	}

	var req VitalsCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		vc.badRequest(c, err)
		return
	}

	vitalDate, err := utils.ParseDate(req.VitalDate)
	if err != nil {
		vc.respondError(c, err)
		return
	}
	metrics := req.metrics()
	for _, col := range vitalColumns {
		if v := metrics[col.field]; v != nil {
			if err := checkRange(col.field, *v); err != nil {
				vc.respondError(c, err)
				return
			}
		}
	}

	record := &models.Vitals{
		UserID:                 user.ID,
		VitalDate:              vitalDate,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		BloodSugar:             req.BloodSugar,
		Weight:                 req.Weight,
		Temperature:            req.Temperature,
		HeartRate:              req.HeartRate,
	}
	if req.Notes != nil {
		if record.Notes, err = cleanNotes(*req.Notes); err != nil {
			vc.respondError(c, err)
			return
		}
	}

	if err := vc.vitals.Create(c.Request.Context(), record); err != nil {
		vc.respondError(c, err)
		return
	}
	vc.success(c, http.StatusCreated, "Vitals recorded successfully", record)
}

// ListVitals godoc
// @Summary List vitals
// @Description Newest first, optionally bounded by startDate and endDate (inclusive)
// @Tags vitals
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param startDate query string false "Lower bound (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string false "Upper bound (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} map[string]interface{} "Vitals retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Router /vitals [get]
func (vc *VitalsController) ListVitals(c *gin.Context) {
	user, ok := vc.currentUser(c)
	if !ok {
		return
	}
	page, err := utils.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		vc.respondError(c, err)
		return
	}
	filter, err := vitalsFilter(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		vc.respondError(c, err)
		return
	}

	vitals, total, err := vc.vitals.List(c.Request.Context(), user.ID, filter, page)
	if err != nil {
		vc.respondError(c, err)
		return
	}
	vc.success(c, http.StatusOK, "Vitals retrieved successfully", VitalsListResponse{
		Vitals:      vitals,
		TotalPages:  repository.TotalPages(total, page.Limit),
		CurrentPage: page.Number,
		Total:       total,
	})
}

func vitalsFilter(startRaw, endRaw string) (repository.VitalsFilter, error) {
	var f repository.VitalsFilter
	if strings.TrimSpace(startRaw) != "" {
		from, err := utils.ParseDate(startRaw)
		if err != nil {
			return f, err
		}
		f.From = &from
	}
	if strings.TrimSpace(endRaw) != "" {
		to, err := utils.ParseDate(endRaw)
		if err != nil {
			return f, err
		}
		to = utils.EndOfDayIfDateOnly(endRaw, to)
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return f, apperr.Validation("startDate must not be after endDate")
	}
	return f, nil
}

// GetVitalsStats godoc
// @Summary Vitals statistics
// @Description Per-metric averages, sample counts and trend series over the last N days
// @Tags vitals
// @Produce json
// @Security BearerAuth
// @Param days query int false "Lookback window in days (1-3650)" default(30)
// @Success 200 {object} map[string]interface{} "Vitals statistics retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid days"
// @Router /vitals/stats [get]
func (vc *VitalsController) GetVitalsStats(c *gin.Context) {
	user, ok := vc.currentUser(c)
	if !ok {
		return
	}
	days, err := services.ParseStatsDays(c.Query("days"))
	if err != nil {
		vc.respondError(c, err)
		return
	}

	stats, err := vc.stats.Stats(c.Request.Context(), user.ID, days)
	if err != nil {
		vc.respondError(c, err)
		return
	}
	vc.success(c, http.StatusOK, "Vitals statistics retrieved successfully", stats)
}

// GetVitals godoc
// @Summary Get a vitals record
// @Tags vitals
// @Produce json
// @Security BearerAuth
// @Param vitalId path string true "Vitals ID"
// @Success 200 {object} map[string]interface{} "Vitals retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid vitals ID"
// @Failure 404 {object} map[string]interface{} "Vitals record not found"
// @Router /vitals/{vitalId} [get]
func (vc *VitalsController) GetVitals(c *gin.Context) {
	user, ok := vc.currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "vitalId", "vitals")
	if err != nil {
		vc.respondError(c, err)
		return
	}

	record, err := vc.vitals.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		vc.respondError(c, err)
		return
	}
	vc.success(c, http.StatusOK, "Vitals retrieved successfully", record)
}

// UpdateVitals godoc
// @Summary Update a vitals record
// @Description Only supplied fields change; null clears a metric. vitalDate cannot be cleared.
// @Tags vitals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vitalId path string true "Vitals ID"
// @Param vitals body VitalsUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Vitals updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Vitals record not found"
// @Router /vitals/{vitalId} [put]
func (vc *VitalsController) UpdateVitals(c *gin.Context) {
	user, ok := vc.currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "vitalId", "vitals")
	if err != nil {
		vc.respondError(c, err)
		return
	}

	var req VitalsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		vc.badRequest(c, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		vc.respondError(c, err)
		return
	}

	record, err := vc.vitals.Update(c.Request.Context(), user.ID, id, patch)
	if err != nil {
		vc.respondError(c, err)
		return
	}
	vc.success(c, http.StatusOK, "Vitals updated successfully", record)
}

func (req VitalsUpdateRequest) patch() (models.Patch, error) {
	p := models.Patch{}

	if req.VitalDate.Set {
		if req.VitalDate.Null {
			return nil, apperr.Validation("vitalDate cannot be cleared")
		}
		d, err := utils.ParseDate(req.VitalDate.Value)
		if err != nil {
			return nil, err
		}
		p["vital_date"] = d
	}

	metrics := req.metrics()
	for _, col := range vitalColumns {
		o := metrics[col.field]
		if o.Set && !o.Null {
			if err := checkRange(col.field, o.Value); err != nil {
				return nil, err
			}
		}
		o.Apply(p, col.column)
	}

	if req.Notes.Set {
		var notes *string
		if !req.Notes.Null {
			var err error
			if notes, err = cleanNotes(req.Notes.Value); err != nil {
				return nil, err
			}
		}
		p["notes"] = notes
	}
	return p, nil
}

// DeleteVitals godoc
// @Summary Delete a vitals record
// @Tags vitals
// @Produce json
// @Security BearerAuth
// @Param vitalId path string true "Vitals ID"
// @Success 200 {object} map[string]interface{} "Vitals deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid vitals ID"
// @Failure 404 {object} map[string]interface{} "Vitals record not found"
// @Router /vitals/{vitalId} [delete]
func (vc *VitalsController) DeleteVitals(c *gin.Context) {
	user, ok := vc.currentUser(c)
	if !ok {
		return
	}
	id, err := pathID(c, "vitalId", "vitals")
	if err != nil {
		vc.respondError(c, err)
		return
	}

	if err := vc.vitals.Delete(c.Request.Context(), user.ID, id); err != nil {
		vc.respondError(c, err)
		return
	}
	vc.success(c, http.StatusOK, "Vitals deleted successfully", nil)
}
