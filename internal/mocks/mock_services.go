package mocks

import (
	"context"

	"healthmate/internal/llm"
	"healthmate/internal/models"
	"healthmate/internal/services"
	"healthmate/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, system string, messages []llm.Message, opts llm.Options) (string, error) {
	args := m.Called(ctx, system, messages, opts)
	return args.String(0), args.Error(1)
}

type MockReplier struct {
	mock.Mock
}

func (m *MockReplier) Reply(ctx context.Context, user *models.User, history []models.ChatMessage) (string, bool) {
	args := m.Called(ctx, user, history)
	return args.String(0), args.Bool(1)
}

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) AnalyzeReport(ctx context.Context, user *models.User, report *models.HealthReport) (*llm.ReportAnalysis, error) {
	args := m.Called(ctx, user, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.ReportAnalysis), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, key, contentType string, data []byte) (storage.StoredFile, error) {
	args := m.Called(ctx, key, contentType, data)
	return args.Get(0).(storage.StoredFile), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) SendMessage(ctx context.Context, user *models.User, chatID uuid.UUID, content string) (*services.SendResult, error) {
	args := m.Called(ctx, user, chatID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.SendResult), args.Error(1)
}

type MockReportIntake struct {
	mock.Mock
}

func (m *MockReportIntake) Upload(ctx context.Context, userID uuid.UUID, in services.UploadInput) (*models.HealthReport, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthReport), args.Error(1)
}

func (m *MockReportIntake) Delete(ctx context.Context, userID, reportID uuid.UUID) error {
	args := m.Called(ctx, userID, reportID)
	return args.Error(0)
}

func (m *MockReportIntake) Analyze(ctx context.Context, user *models.User, reportID uuid.UUID) (*models.HealthReport, error) {
	args := m.Called(ctx, user, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthReport), args.Error(1)
}

func (m *MockReportIntake) MaxUploadBytes() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

type MockStatsProvider struct {
	mock.Mock
}

func (m *MockStatsProvider) Stats(ctx context.Context, userID uuid.UUID, days int) (*services.VitalsStats, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.VitalsStats), args.Error(1)
}
