package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/service/mocks"
)

// newTestFieldService создает сервис полевых операций с мокированными репозиториями
func newTestFieldService(t *testing.T) (*fieldService, *mocks.MockIncidentRepository, *mocks.MockAssignmentRepository, *mocks.MockDirectoryRepository) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	assignmentsMock := mocks.NewMockAssignmentRepository(ctrl)
	directoryMock := mocks.NewMockDirectoryRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewFieldService(incidentsMock, assignmentsMock, directoryMock, logger)
	return service.(*fieldService), incidentsMock, assignmentsMock, directoryMock
}

func fieldVolunteer() models.Actor {
	return models.Actor{ID: uuid.New(), Name: "Полевой волонтер", Role: models.RoleVolunteer, Online: true}
}

func TestPushFieldUpdate_Success_WithReport(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, _ := newTestFieldService(t)
	ctx := context.Background()
	actor := fieldVolunteer()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	assignmentsMock.EXPECT().IsAssigned(ctx, incidentID, actor.ID, models.AssigneeVolunteer).Return(true, nil).Times(1)
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	assignmentsMock.EXPECT().UpsertTask(ctx, incidentID, actor.ID, models.TaskInProgress).Return(nil).Times(1)
	assignmentsMock.EXPECT().
		AppendFieldReport(ctx, gomock.Any()).
		Do(func(ctx context.Context, report *models.FieldReport) {
			assert.Equal(t, incidentID, report.IncidentID)
			assert.Equal(t, actor.ID, report.VolunteerID)
			assert.Equal(t, actor.Name, report.VolunteerName)
			assert.Equal(t, "Вода отступает в секторе 4", report.Text)
		}).Return(nil).Times(1)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.PushFieldUpdate(ctx, actor, incidentID, models.TaskInProgress, "Вода отступает в секторе 4")

	// Проверки
	require.NoError(t, err)
}

func TestPushFieldUpdate_EmptyReportSkipsJournal(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, _ := newTestFieldService(t)
	ctx := context.Background()
	actor := fieldVolunteer()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	assignmentsMock.EXPECT().IsAssigned(ctx, incidentID, actor.ID, models.AssigneeVolunteer).Return(true, nil).Times(1)
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	assignmentsMock.EXPECT().UpsertTask(ctx, incidentID, actor.ID, models.TaskCompleted).Return(nil).Times(1)
	assignmentsMock.EXPECT().AppendFieldReport(gomock.Any(), gomock.Any()).Times(0)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.PushFieldUpdate(ctx, actor, incidentID, models.TaskCompleted, "")

	// Проверки
	require.NoError(t, err)
}

func TestPushFieldUpdate_ImplicitActivation(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, _ := newTestFieldService(t)
	ctx := context.Background()
	actor := fieldVolunteer()
	incidentID := uuid.New()
	// Отчет по еще не подтвержденному инциденту
	incident := &models.Incident{ID: incidentID, Status: models.StatusReported}

	// Ожидания
	assignmentsMock.EXPECT().IsAssigned(ctx, incidentID, actor.ID, models.AssigneeVolunteer).Return(true, nil).Times(1)
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	assignmentsMock.EXPECT().UpsertTask(ctx, incidentID, actor.ID, models.TaskInProgress).Return(nil).Times(1)
	assignmentsMock.EXPECT().AppendFieldReport(ctx, gomock.Any()).Return(nil).Times(1)
	incidentsMock.EXPECT().Activate(ctx, incidentID).Return(true, nil).Times(1)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.PushFieldUpdate(ctx, actor, incidentID, models.TaskInProgress, "Прибыл на место, подтверждаю")

	// Проверки
	require.NoError(t, err)
}

func TestPushFieldUpdate_ResolvedIncidentNotReactivated(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, _ := newTestFieldService(t)
	ctx := context.Background()
	actor := fieldVolunteer()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusResolved}

	// Ожидания
	// Из resolved перехода в active нет, Activate не должен вызываться
	assignmentsMock.EXPECT().IsAssigned(ctx, incidentID, actor.ID, models.AssigneeVolunteer).Return(true, nil).Times(1)
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	assignmentsMock.EXPECT().UpsertTask(ctx, incidentID, actor.ID, models.TaskCompleted).Return(nil).Times(1)
	incidentsMock.EXPECT().Activate(gomock.Any(), gomock.Any()).Times(0)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.PushFieldUpdate(ctx, actor, incidentID, models.TaskCompleted, "")

	// Проверки
	require.NoError(t, err)
}

func TestPushFieldUpdate_NotAssigned(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, _ := newTestFieldService(t)
	ctx := context.Background()
	actor := fieldVolunteer()
	incidentID := uuid.New()

	// Ожидания
	assignmentsMock.EXPECT().IsAssigned(ctx, incidentID, actor.ID, models.AssigneeVolunteer).Return(false, nil).Times(1)
	incidentsMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	assignmentsMock.EXPECT().UpsertTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.PushFieldUpdate(ctx, actor, incidentID, models.TaskInProgress, "не мой инцидент")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestPushFieldUpdate_UnknownStatus(t *testing.T) {
	// Подготовка
	service, _, assignmentsMock, _ := newTestFieldService(t)
	ctx := context.Background()

	// Ожидания
	assignmentsMock.EXPECT().IsAssigned(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.PushFieldUpdate(ctx, fieldVolunteer(), uuid.New(), models.TaskStatus("done"), "")

	// Проверки
	require.Error(t, err)
}

func TestSetPresence_Success(t *testing.T) {
	// Подготовка
	service, _, _, directoryMock := newTestFieldService(t)
	ctx := context.Background()
	actor := fieldVolunteer()

	// Ожидания
	directoryMock.EXPECT().SetPresence(ctx, actor.ID, true).Return(nil).Times(1)

	// Действие
	err := service.SetPresence(ctx, actor, true)

	// Проверки
	require.NoError(t, err)
}
