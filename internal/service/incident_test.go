package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2023FHIT047/crisisLink2/internal/config"
	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/service/mocks"
)

// newTestIncidentService создает сервис инцидентов с мокированными репозиториями
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockNotificationRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	notificationsMock := mocks.NewMockNotificationRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}

	service := NewIncidentService(repoMock, notificationsMock, logger, cfg)
	return service.(*incidentService), repoMock, notificationsMock
}

func coordinator() models.Actor {
	return models.Actor{ID: uuid.New(), Name: "Командир", Role: models.RoleCoordinator}
}

func TestReportIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, notificationsMock := newTestIncidentService(t)
	ctx := context.Background()
	actor := models.Actor{ID: uuid.New(), Name: "Репортер", Role: models.RoleCommunity}
	incident := &models.Incident{
		Title:    "Наводнение у реки",
		City:     "Chennai",
		Severity: models.SeverityHigh,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			// Симулируем, что БД присвоила ID
			inc.ID = uuid.New()
			return nil
		}).Times(1)

	notificationsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, n *models.Notification) {
			assert.Equal(t, "hazard", n.Type)
			assert.Equal(t, "Chennai", n.Sector)
		}).Return(nil).Times(1)

	// Действие
	err := service.ReportIncident(ctx, actor, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, incident.Status)
	assert.Equal(t, models.FeedbackNone, incident.FeedbackStatus)
	assert.Equal(t, actor.ID, incident.ReporterID)
	assert.Equal(t, actor.Name, incident.ReporterName)
	assert.NotEqual(t, uuid.Nil, incident.ID)
}

func TestReportIncident_NotificationFailureDoesNotFailReport(t *testing.T) {
	// Подготовка
	service, repoMock, notificationsMock := newTestIncidentService(t)
	ctx := context.Background()
	actor := models.Actor{ID: uuid.New(), Role: models.RoleCommunity}
	incident := &models.Incident{Title: "Обрушение", City: "Chennai", Severity: models.SeverityCritical}

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	notificationsMock.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("очередь недоступна")).Times(1)

	// Действие
	err := service.ReportIncident(ctx, actor, incident)

	// Проверки
	require.NoError(t, err)
}

func TestReportIncident_UnknownSeverityDefaultsToMedium(t *testing.T) {
	// Подготовка
	service, repoMock, notificationsMock := newTestIncidentService(t)
	ctx := context.Background()
	actor := models.Actor{ID: uuid.New(), Role: models.RoleCommunity}
	incident := &models.Incident{Title: "Задымление", City: "Chennai", Severity: "catastrophic"}

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	notificationsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.ReportIncident(ctx, actor, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.SeverityMedium, incident.Severity)
}

func TestApproveIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{ID: incidentID, Status: models.StatusReported}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Activate(ctx, incidentID).Return(true, nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.ApproveIncident(ctx, coordinator(), incidentID)

	// Проверки
	require.NoError(t, err)
}

func TestApproveIncident_AlreadyActive_NoOp(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Activate(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.ApproveIncident(ctx, coordinator(), incidentID)

	// Проверки
	require.NoError(t, err)
}

func TestApproveIncident_Forbidden(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	volunteer := models.Actor{ID: uuid.New(), Role: models.RoleVolunteer}

	// Ожидания
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.ApproveIncident(ctx, volunteer, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApproveIncident_ResolvedRejected(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{ID: incidentID, Status: models.StatusResolved}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)

	// Действие
	err := service.ApproveIncident(ctx, coordinator(), incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestApproveIncident_LostRace(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{ID: incidentID, Status: models.StatusReported}

	// Ожидания
	// Условный апдейт не сработал: статус сменился между чтением и записью
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Activate(ctx, incidentID).Return(false, nil).Times(1)

	// Действие
	err := service.ApproveIncident(ctx, coordinator(), incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestApproveIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, fmt.Errorf("не найдено")).Times(1)

	// Действие
	err := service.ApproveIncident(ctx, coordinator(), incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Resolve(ctx, incidentID).Return(true, nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.ResolveIncident(ctx, coordinator(), incidentID)

	// Проверки
	require.NoError(t, err)
}

func TestResolveIncident_DoubleResolveRejected(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{
		ID:             incidentID,
		Status:         models.StatusResolved,
		FeedbackStatus: models.FeedbackContacted,
	}

	// Ожидания
	// Повторный резолв не должен дойти до записи и затереть feedback_status
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	repoMock.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.ResolveIncident(ctx, coordinator(), incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestResolveIncident_ReportedRejected(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	existing := &models.Incident{ID: incidentID, Status: models.StatusReported}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)

	// Действие
	err := service.ResolveIncident(ctx, coordinator(), incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Title: "Инцидент из кеша"}

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(expected, nil).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Title: "Инцидент из БД"}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil).Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expected, nil).Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().SetIncidentCache(ctx, expected).Return(nil).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetIncidentFromCache(ctx, incidentID).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, fmt.Errorf("не найдено")).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListIncidents_NormalizesPagination(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{
		{ID: uuid.New(), Title: "Инцидент 1"},
		{ID: uuid.New(), Title: "Инцидент 2"},
	}

	// Ожидания
	repoMock.EXPECT().
		ListIncidents(ctx, models.IncidentFilter{City: "Chennai", Page: 1, PageSize: 20}).
		Return(expected, nil).
		Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx, models.IncidentFilter{City: "Chennai", Page: 0, PageSize: 500})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestDebriefQueue_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{
		{ID: uuid.New(), Status: models.StatusResolved, FeedbackStatus: models.FeedbackPending},
	}

	// Ожидания
	repoMock.EXPECT().DebriefQueue(ctx).Return(expected, nil).Times(1)

	// Действие
	incidents, err := service.DebriefQueue(ctx, coordinator())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestDebriefQueue_Forbidden(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().DebriefQueue(gomock.Any()).Times(0)

	// Действие
	incidents, err := service.DebriefQueue(ctx, models.Actor{ID: uuid.New(), Role: models.RoleCommunity})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorIs(t, err, ErrForbidden)
}
