package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
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

// multipartOverhead is added to the file cap for the other form fields.
const multipartOverhead = 1 << 20

// ReportIntake owns the report operations that touch file storage or the
// language model.
type ReportIntake interface {
	Upload(ctx context.Context, userID uuid.UUID, in services.UploadInput) (*models.HealthReport, error)
	Delete(ctx context.Context, userID, reportID uuid.UUID) error
	Analyze(ctx context.Context, user *models.User, reportID uuid.UUID) (*models.HealthReport, error)
	MaxUploadBytes() int64
}

type ReportUpdateRequest struct {
	Title      models.Optional[string] `json:"title" swaggertype:"string"`
	ReportType models.Optional[string] `json:"reportType" swaggertype:"string" enums:"lab_test,prescription,xray,scan,ultrasound,other"`
	ReportDate models.Optional[string] `json:"reportDate" swaggertype:"string"`
}

// reportSummary hides the extracted text in list responses.
type reportSummary struct {
	*models.HealthReport
	ExtractedText *string `json:"extractedText,omitempty"`
}

type ReportListResponse struct {
	Reports     []reportSummary `json:"reports"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int64           `json:"total"`
}

type ReportController struct {
	Responder
	reports repository.ReportRepository
	intake  ReportIntake
}

func NewReportController(reports repository.ReportRepository, intake ReportIntake, r Responder) *ReportController {
	return &ReportController{Responder: r, reports: reports, intake: intake}
}

// UploadReport godoc
// @Summary Upload a medical report
// @Description PDF, JPEG or PNG up to the configured size. Text is extracted from PDFs.
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Report file"
// @Param title formData string true "Title"
// @Param reportType formData string true "Report type" Enums(lab_test,prescription,xray,scan,ultrasound,other)
// @Param reportDate formData string false "Report date (YYYY-MM-DD or RFC 3339)"
// @Success 201 {object} map[string]interface{} "Report uploaded successfully"
// @Failure 400 {object} map[string]interface{} "Invalid upload"
// @Router /reports/upload [post]
func (rc *ReportController) UploadReport(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}

	maxBytes := rc.intake.MaxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			rc.respondError(c, apperr.Validation(services.FileTooLargeMessage(maxBytes)))
		case errors.Is(err, http.ErrMissingFile):
			rc.respondError(c, apperr.Validation("No file uploaded"))
		default:
			rc.respondError(c, apperr.Wrap(apperr.KindValidation, "Invalid multipart form", err))
		}
		return
	}
	if header.Size > maxBytes {
		rc.respondError(c, apperr.Validation(services.FileTooLargeMessage(maxBytes)))
		return
	}

	data, err := readUpload(header, maxBytes)
	if err != nil {
		rc.respondError(c, err)
		return
	}

	report, err := rc.intake.Upload(c.Request.Context(), user.ID, services.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		Title:       c.PostForm("title"),
		ReportType:  c.PostForm("reportType"),
		ReportDate:  c.PostForm("reportDate"),
	})
	if err != nil {
		rc.respondError(c, err)
		return
	}
	rc.success(c, http.StatusCreated, "Report uploaded successfully", report)
}

func readUpload(header *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, apperr.Internal("Failed to read upload", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, apperr.Internal("Failed to read upload", err)
	}
	return data, nil
}

// ListReports godoc
// @Summary List reports
// @Description Newest report date first. Extracted text is not included.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param reportType query string false "Filter by report type"
// @Success 200 {object} map[string]interface{} "Reports retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Router /reports [get]
func (rc *ReportController) ListReports(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}
	page, err := utils.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		rc.respondError(c, err)
		return
	}

	var filter repository.ReportFilter
	if raw := strings.TrimSpace(c.Query("reportType")); raw != "" {
		rt, ok := models.ParseReportType(raw)
		if !ok {
			rc.respondError(c, apperr.Validation("Invalid report type"))
			return
		}
		filter.ReportType = string(rt)
	}

	reports, total, err := rc.reports.List(c.Request.Context(), user.ID, filter, page)
	if err != nil {
		rc.respondError(c, err)
		return
	}

	items := make([]reportSummary, len(reports))
	for i := range reports {
		items[i] = reportSummary{HealthReport: &reports[i]}
	}
	rc.success(c, http.StatusOK, "Reports retrieved successfully", ReportListResponse{
		Reports:     items,
		TotalPages:  repository.TotalPages(total, page.Limit),
		CurrentPage: page.Number,
		Total:       total,
	})
}

// GetReport godoc
// @Summary Get a report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param reportId path string true "Report ID"
// @Success 200 {object} map[string]interface{} "Report retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /reports/{reportId} [get]
func (rc *ReportController) GetReport(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}
	reportID, err := pathID(c, "reportId", "report")
	if err != nil {
		rc.respondError(c, err)
		return
	}

	report, err := rc.reports.Get(c.Request.Context(), user.ID, reportID)
	if err != nil {
		rc.respondError(c, err)
		return
	}
	rc.success(c, http.StatusOK, "Report retrieved successfully", report)
}

// UpdateReport godoc
// @Summary Update report metadata
// @Description Only title, reportType and reportDate can change
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reportId path string true "Report ID"
// @Param report body ReportUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Report updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /reports/{reportId} [put]
func (rc *ReportController) UpdateReport(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}
	reportID, err := pathID(c, "reportId", "report")
	if err != nil {
		rc.respondError(c, err)
		return
	}

	var req ReportUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rc.badRequest(c, err)
		return
	}
	patch, err := req.patch()
	if err != nil {
		rc.respondError(c, err)
		return
	}

	report, err := rc.reports.Update(c.Request.Context(), user.ID, reportID, patch)
	if err != nil {
		rc.respondError(c, err)
		return
	}
	rc.success(c, http.StatusOK, "Report updated successfully", report)
}

func (req ReportUpdateRequest) patch() (models.Patch, error) {
	p := models.Patch{}

	if req.Title.Set {
		title := strings.TrimSpace(req.Title.Value)
		if req.Title.Null || title == "" {
			return nil, apperr.Validation("Title is required")
		}
		if len([]rune(title)) > services.MaxTitleLength {
			return nil, apperr.Validation(fmt.Sprintf("Title must be at most %d characters", services.MaxTitleLength))
		}
		p["title"] = title
	}
	if req.ReportType.Set {
		rt, ok := models.ParseReportType(strings.TrimSpace(req.ReportType.Value))
		if req.ReportType.Null || !ok {
			return nil, apperr.Validation("Invalid report type")
		}
		p["report_type"] = rt
	}
	if req.ReportDate.Set {
		if req.ReportDate.Null {
			return nil, apperr.Validation("Report date cannot be cleared")
		}
		d, err := utils.ParseDate(req.ReportDate.Value)
		if err != nil {
			return nil, err
		}
		p["report_date"] = d
	}
	return p, nil
}

// DeleteReport godoc
// @Summary Delete a report and its file
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param reportId path string true "Report ID"
// @Success 200 {object} map[string]interface{} "Report deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Router /reports/{reportId} [delete]
func (rc *ReportController) DeleteReport(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}
	reportID, err := pathID(c, "reportId", "report")
	if err != nil {
		rc.respondError(c, err)
		return
	}

	if err := rc.intake.Delete(c.Request.Context(), user.ID, reportID); err != nil {
		rc.respondError(c, err)
		return
	}
	rc.success(c, http.StatusOK, "Report deleted successfully", nil)
}

// AnalyzeReport godoc
// @Summary Analyze a report with the assistant
// @Description Stores a summary, an Urdu summary and structured key findings on the report
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param reportId path string true "Report ID"
// @Success 200 {object} map[string]interface{} "Report analyzed successfully"
// @Failure 400 {object} map[string]interface{} "Invalid report ID"
// @Failure 404 {object} map[string]interface{} "Report not found"
// @Failure 502 {object} map[string]interface{} "Report analysis is currently unavailable"
// @Router /chat/analyze-report/{reportId} [post]
func (rc *ReportController) AnalyzeReport(c *gin.Context) {
	user, ok := rc.currentUser(c)
	if !ok {
		return
	}
	reportID, err := pathID(c, "reportId", "report")
	if err != nil {
		rc.respondError(c, err)
		return
	}

	report, err := rc.intake.Analyze(c.Request.Context(), user, reportID)
	if err != nil {
		rc.respondError(c, err)
		return
	}
	rc.success(c, http.StatusOK, "Report analyzed successfully", report)
}
