package mocks

import (
	"context"
	"time"

	"healthmate/internal/models"
	"healthmate/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uuid.UUID, patch models.Patch) (*models.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	args := m.Called(ctx, chat)
	return args.Error(0)
}

func (m *MockChatRepository) List(ctx context.Context, userID uuid.UUID, page repository.Page) ([]models.Chat, int64, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Chat), args.Get(1).(int64), args.Error(2)
}

func (m *MockChatRepository) Get(ctx context.Context, userID, chatID uuid.UUID) (*models.Chat, error) {
	args := m.Called(ctx, userID, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatRepository) UpdateTitle(ctx context.Context, userID, chatID uuid.UUID, title string) (*models.Chat, error) {
	args := m.Called(ctx, userID, chatID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Chat), args.Error(1)
}

func (m *MockChatRepository) AppendMessages(ctx context.Context, userID, chatID uuid.UUID, msgs ...*models.ChatMessage) error {
	args := m.Called(ctx, userID, chatID, msgs)
	return args.Error(0)
}

func (m *MockChatRepository) SoftDelete(ctx context.Context, userID, chatID uuid.UUID) error {
	args := m.Called(ctx, userID, chatID)
	return args.Error(0)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *models.HealthReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) List(ctx context.Context, userID uuid.UUID, filter repository.ReportFilter, page repository.Page) ([]models.HealthReport, int64, error) {
	args := m.Called(ctx, userID, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.HealthReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) Get(ctx context.Context, userID, reportID uuid.UUID) (*models.HealthReport, error) {
	args := m.Called(ctx, userID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthReport), args.Error(1)
}

func (m *MockReportRepository) Update(ctx context.Context, userID, reportID uuid.UUID, patch models.Patch) (*models.HealthReport, error) {
	args := m.Called(ctx, userID, reportID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthReport), args.Error(1)
}

func (m *MockReportRepository) Delete(ctx context.Context, userID, reportID uuid.UUID) (*models.HealthReport, error) {
	args := m.Called(ctx, userID, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthReport), args.Error(1)
}

type MockVitalsRepository struct {
	mock.Mock
}

func (m *MockVitalsRepository) Create(ctx context.Context, vitals *models.Vitals) error {
	args := m.Called(ctx, vitals)
	return args.Error(0)
}

func (m *MockVitalsRepository) List(ctx context.Context, userID uuid.UUID, filter repository.VitalsFilter, page repository.Page) ([]models.Vitals, int64, error) {
	args := m.Called(ctx, userID, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Vitals), args.Get(1).(int64), args.Error(2)
}

func (m *MockVitalsRepository) Get(ctx context.Context, userID, vitalsID uuid.UUID) (*models.Vitals, error) {
	args := m.Called(ctx, userID, vitalsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vitals), args.Error(1)
}

func (m *MockVitalsRepository) Update(ctx context.Context, userID, vitalsID uuid.UUID, patch models.Patch) (*models.Vitals, error) {
	args := m.Called(ctx, userID, vitalsID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vitals), args.Error(1)
}

func (m *MockVitalsRepository) Delete(ctx context.Context, userID, vitalsID uuid.UUID) error {
	args := m.Called(ctx, userID, vitalsID)
	return args.Error(0)
}

func (m *MockVitalsRepository) Since(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Vitals, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vitals), args.Error(1)
}
