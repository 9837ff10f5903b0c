package services_test

import (
	"context"
	"errors"
	"testing"

	"healthmate/internal/apperr"
	"healthmate/internal/llm"
	"healthmate/internal/logger"
	"healthmate/internal/mocks"
	"healthmate/internal/models"
	"healthmate/internal/services"
	"healthmate/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
)

type reportFixture struct {
	repo      *mocks.MockReportRepository
	store     *mocks.MockFileStore
	extractor *mocks.MockTextExtractor
	analyzer  *mocks.MockAnalyzer
	svc       *services.ReportService
}

func newReportFixture(maxBytes int64) *reportFixture {
	f := &reportFixture{
		repo:      new(mocks.MockReportRepository),
		store:     new(mocks.MockFileStore),
		extractor: new(mocks.MockTextExtractor),
		analyzer:  new(mocks.MockAnalyzer),
	}
	f.svc = services.NewReportService(f.repo, f.store, f.extractor, f.analyzer, maxBytes, logger.NewNop())
	return f
}

func validPDFUpload() services.UploadInput {
	return services.UploadInput{
		FileName:    "blood-work.pdf",
		ContentType: "application/pdf",
		Data:        pdfBytes,
		Title:       "Blood work",
		ReportType:  "lab_test",
		ReportDate:  "2024-03-01",
	}
}

func TestReportUpload_RejectsBeforeAnyWrite(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *services.UploadInput)
		message string
	}{
		{"empty file", func(in *services.UploadInput) { in.Data = nil }, "No file uploaded"},
		{"too large", func(in *services.UploadInput) { in.Data = make([]byte, 2<<20) }, "File too large. Maximum size is 1MB."},
		{"text plain", func(in *services.UploadInput) { in.ContentType = "text/plain" }, "Invalid file type. Only PDF, JPEG, JPG, and PNG files are allowed."},
		{"content mismatch", func(in *services.UploadInput) { in.ContentType = "image/png" }, "File content does not match its declared type"},
		{"blank title", func(in *services.UploadInput) { in.Title = "  " }, "Title is required"},
		{"bad report type", func(in *services.UploadInput) { in.ReportType = "mri" }, "Invalid report type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReportFixture(1 << 20)
			in := validPDFUpload()
			tt.mutate(&in)

			report, err := f.svc.Upload(context.Background(), uuid.New(), in)

			assert.Nil(t, report)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrValidation))
			assert.Equal(t, tt.message, err.Error())
			f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestReportUpload_PDFStoresExtractsAndInserts(t *testing.T) {
	f := newReportFixture(0)
	userID := uuid.New()

	f.store.On("Save", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > len("reports/") && key[:8] == "reports/"
	}), "application/pdf", pdfBytes).
		Return(storage.StoredFile{Key: "reports/file-1-123456789.pdf", URL: "/uploads/reports/file-1-123456789.pdf"}, nil)
	f.extractor.On("ExtractText", pdfBytes).Return("Hemoglobin 13.5", nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*models.HealthReport")).Return(nil)

	report, err := f.svc.Upload(context.Background(), userID, validPDFUpload())

	require.NoError(t, err)
	assert.Equal(t, userID, report.UserID)
	assert.Equal(t, models.ReportLabTest, report.ReportType)
	assert.Equal(t, "/uploads/reports/file-1-123456789.pdf", report.FileURL)
	assert.Equal(t, int64(len(pdfBytes)), report.FileSize)
	require.NotNil(t, report.ExtractedText)
	assert.Equal(t, "Hemoglobin 13.5", *report.ExtractedText)
	f.store.AssertExpectations(t)
	f.repo.AssertExpectations(t)
}

func TestReportUpload_ExtractionFailureLeavesTextNil(t *testing.T) {
	f := newReportFixture(0)

	f.store.On("Save", mock.Anything, mock.Anything, "application/pdf", pdfBytes).
		Return(storage.StoredFile{Key: "reports/a.pdf", URL: "/uploads/reports/a.pdf"}, nil)
	f.extractor.On("ExtractText", pdfBytes).Return("", errors.New("corrupt xref"))
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*models.HealthReport")).Return(nil)

	report, err := f.svc.Upload(context.Background(), uuid.New(), validPDFUpload())

	require.NoError(t, err)
	assert.Nil(t, report.ExtractedText)
}

func TestReportUpload_ImageSkipsExtraction(t *testing.T) {
	f := newReportFixture(0)
	in := validPDFUpload()
	in.FileName = "scan.png"
	in.ContentType = "image/png"
	in.Data = pngBytes

	f.store.On("Save", mock.Anything, mock.Anything, "image/png", pngBytes).
		Return(storage.StoredFile{Key: "reports/a.png", URL: "/uploads/reports/a.png"}, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*models.HealthReport")).Return(nil)

	report, err := f.svc.Upload(context.Background(), uuid.New(), in)

	require.NoError(t, err)
	assert.Nil(t, report.ExtractedText)
	f.extractor.AssertNotCalled(t, "ExtractText", mock.Anything)
}

func TestReportUpload_InsertFailureRemovesFile(t *testing.T) {
	f := newReportFixture(0)

	f.store.On("Save", mock.Anything, mock.Anything, "application/pdf", pdfBytes).
		Return(storage.StoredFile{Key: "reports/orphan.pdf", URL: "/uploads/reports/orphan.pdf"}, nil)
	f.extractor.On("ExtractText", pdfBytes).Return("text", nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	f.store.On("Delete", mock.Anything, "reports/orphan.pdf").Return(nil)

	report, err := f.svc.Upload(context.Background(), uuid.New(), validPDFUpload())

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.From(err).Kind)
	f.store.AssertCalled(t, "Delete", mock.Anything, "reports/orphan.pdf")
}

func TestReportDelete_FileErrorsDoNotFail(t *testing.T) {
	f := newReportFixture(0)
	userID, reportID := uuid.New(), uuid.New()

	f.repo.On("Delete", mock.Anything, userID, reportID).
		Return(&models.HealthReport{ID: reportID, StorageKey: "reports/gone.pdf"}, nil)
	f.store.On("Delete", mock.Anything, "reports/gone.pdf").Return(errors.New("bucket unavailable"))

	assert.NoError(t, f.svc.Delete(context.Background(), userID, reportID))
	f.store.AssertExpectations(t)
}

func TestReportDelete_NotOwned(t *testing.T) {
	f := newReportFixture(0)
	userID, reportID := uuid.New(), uuid.New()

	f.repo.On("Delete", mock.Anything, userID, reportID).Return(nil, apperr.NotFound("Report not found"))

	err := f.svc.Delete(context.Background(), userID, reportID)

	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	f.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestReportAnalyze_StoresStructuredResult(t *testing.T) {
	f := newReportFixture(0)
	user := &models.User{ID: uuid.New()}
	reportID := uuid.New()
	report := &models.HealthReport{ID: reportID, UserID: user.ID, Title: "CBC"}

	f.repo.On("Get", mock.Anything, user.ID, reportID).Return(report, nil)
	f.analyzer.On("AnalyzeReport", mock.Anything, user, report).Return(&llm.ReportAnalysis{
		Summary:         "Normal CBC",
		SummaryUrdu:     "نارمل",
		KeyFindings:     []string{"Hemoglobin normal"},
		Recommendations: []string{"Repeat in a year"},
	}, nil)

	var captured models.Patch
	f.repo.On("Update", mock.Anything, user.ID, reportID, mock.AnythingOfType("models.Patch")).
		Run(func(args mock.Arguments) { captured = args.Get(3).(models.Patch) }).
		Return(report, nil)

	_, err := f.svc.Analyze(context.Background(), user, reportID)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "Normal CBC", *captured["ai_summary"].(*string))
	assert.Equal(t, "نارمل", *captured["ai_summary_urdu"].(*string))
	assert.JSONEq(t, `{"findings":["Hemoglobin normal"],"recommendations":["Repeat in a year"]}`,
		string(captured["key_findings"].(datatypes.JSON)))
	assert.True(t, captured.Has("analyzed_at"))
}

func TestReportAnalyze_UpstreamFailureLeavesRecord(t *testing.T) {
	f := newReportFixture(0)
	user := &models.User{ID: uuid.New()}
	reportID := uuid.New()
	report := &models.HealthReport{ID: reportID, UserID: user.ID}

	f.repo.On("Get", mock.Anything, user.ID, reportID).Return(report, nil)
	f.analyzer.On("AnalyzeReport", mock.Anything, user, report).
		Return(nil, apperr.Upstream("Report analysis is currently unavailable", errors.New("timeout")))

	_, err := f.svc.Analyze(context.Background(), user, reportID)

	assert.True(t, errors.Is(err, apperr.ErrUpstream))
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
