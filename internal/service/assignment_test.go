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

// newTestAssignmentService создает движок назначений с мокированными репозиториями
func newTestAssignmentService(t *testing.T) (*assignmentService, *mocks.MockIncidentRepository, *mocks.MockAssignmentRepository, *mocks.MockDirectoryRepository) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	assignmentsMock := mocks.NewMockAssignmentRepository(ctrl)
	directoryMock := mocks.NewMockDirectoryRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewAssignmentService(incidentsMock, assignmentsMock, directoryMock, logger)
	return service.(*assignmentService), incidentsMock, assignmentsMock, directoryMock
}

func TestAssignVolunteer_Success(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, directoryMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	volunteerID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	directoryMock.EXPECT().GetProfile(ctx, volunteerID).Return(&models.Profile{ID: volunteerID, IsOnline: true}, nil).Times(1)
	assignmentsMock.EXPECT().CountActiveMissions(ctx, volunteerID, models.AssigneeVolunteer, incidentID).Return(0, nil).Times(1)
	assignmentsMock.EXPECT().AddAssignment(ctx, incidentID, volunteerID, models.AssigneeVolunteer).Return(nil).Times(1)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.AssignVolunteer(ctx, coordinator(), incidentID, volunteerID)

	// Проверки
	require.NoError(t, err)
}

func TestAssignVolunteer_Offline(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, directoryMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	volunteerID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	directoryMock.EXPECT().GetProfile(ctx, volunteerID).Return(&models.Profile{ID: volunteerID, IsOnline: false}, nil).Times(1)
	assignmentsMock.EXPECT().AddAssignment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AssignVolunteer(ctx, coordinator(), incidentID, volunteerID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVolunteerOffline)
}

func TestAssignVolunteer_EngagedElsewhere(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, directoryMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	volunteerID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	directoryMock.EXPECT().GetProfile(ctx, volunteerID).Return(&models.Profile{ID: volunteerID, IsOnline: true}, nil).Times(1)
	assignmentsMock.EXPECT().CountActiveMissions(ctx, volunteerID, models.AssigneeVolunteer, incidentID).Return(1, nil).Times(1)
	assignmentsMock.EXPECT().AddAssignment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AssignVolunteer(ctx, coordinator(), incidentID, volunteerID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissionConflict)
}

func TestAssignVolunteer_IncidentNotActive(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, _ := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusReported}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)

	// Действие
	err := service.AssignVolunteer(ctx, coordinator(), incidentID, uuid.New())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAssignVolunteer_Forbidden(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, _ := newTestAssignmentService(t)
	ctx := context.Background()
	volunteer := models.Actor{ID: uuid.New(), Role: models.RoleVolunteer}

	// Ожидания
	incidentsMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AssignVolunteer(ctx, volunteer, uuid.New(), uuid.New())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUnassignVolunteer_Success(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	volunteerID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	// Снятие не проверяет ни присутствие, ни занятость
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	assignmentsMock.EXPECT().RemoveAssignment(ctx, incidentID, volunteerID, models.AssigneeVolunteer).Return(nil).Times(1)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.UnassignVolunteer(ctx, coordinator(), incidentID, volunteerID)

	// Проверки
	require.NoError(t, err)
}

func TestAssignCenter_Success(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	centerID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	assignmentsMock.EXPECT().CountActiveMissions(ctx, centerID, models.AssigneeCenter, incidentID).Return(3, nil).Times(1)
	assignmentsMock.EXPECT().AddAssignment(ctx, incidentID, centerID, models.AssigneeCenter).Return(nil).Times(1)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := service.AssignCenter(ctx, coordinator(), incidentID, centerID)

	// Проверки
	require.NoError(t, err)
}

func TestAssignCenter_AtCapacity(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, _ := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	centerID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	assignmentsMock.EXPECT().CountActiveMissions(ctx, centerID, models.AssigneeCenter, incidentID).Return(centerMissionCap, nil).Times(1)
	assignmentsMock.EXPECT().AddAssignment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AssignCenter(ctx, coordinator(), incidentID, centerID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCenterCapacity)
}

func TestRankNearbyVolunteers_SortedByDistance(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, directoryMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:        incidentID,
		Status:    models.StatusActive,
		City:      "Chennai",
		Latitude:  13.0827,
		Longitude: 80.2707,
	}

	nearID := uuid.New()
	farID := uuid.New()
	near := &models.Volunteer{ID: uuid.New(), ProfileID: nearID, FullName: "Ближний", City: "Chennai", Latitude: 13.09, Longitude: 80.27}
	far := &models.Volunteer{ID: uuid.New(), ProfileID: farID, FullName: "Дальний", City: "Chennai", Latitude: 13.50, Longitude: 80.10}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	// Реестр отдает дальнего первым, ранжирование должно пересортировать
	directoryMock.EXPECT().ListVolunteersByCity(ctx, "Chennai").Return([]*models.Volunteer{far, near}, nil).Times(1)
	assignmentsMock.EXPECT().BusyVolunteers(ctx, incidentID).Return(map[uuid.UUID]bool{farID: true}, nil).Times(1)

	// Действие
	ranked, err := service.RankNearbyVolunteers(ctx, coordinator(), incidentID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Ближний", ranked[0].FullName)
	assert.Equal(t, "Дальний", ranked[1].FullName)
	assert.Less(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
	assert.False(t, ranked[0].BusyElsewhere)
	assert.True(t, ranked[1].BusyElsewhere)
}

func TestRankNearbyCenters_IncludesMissionLoad(t *testing.T) {
	// Подготовка
	service, incidentsMock, assignmentsMock, directoryMock := newTestAssignmentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:        incidentID,
		Status:    models.StatusActive,
		City:      "Chennai",
		Latitude:  13.0827,
		Longitude: 80.2707,
	}

	loadedID := uuid.New()
	idleID := uuid.New()
	loaded := &models.ResourceCenter{ID: loadedID, Name: "Хаб A", City: "Chennai", Latitude: 13.20, Longitude: 80.30}
	idle := &models.ResourceCenter{ID: idleID, Name: "Хаб B", City: "Chennai", Latitude: 13.09, Longitude: 80.27}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	directoryMock.EXPECT().ListCentersByCity(ctx, "Chennai").Return([]*models.ResourceCenter{loaded, idle}, nil).Times(1)
	assignmentsMock.EXPECT().CenterMissionLoads(ctx).Return(map[uuid.UUID]int{loadedID: 3}, nil).Times(1)

	// Действие
	ranked, err := service.RankNearbyCenters(ctx, coordinator(), incidentID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Хаб B", ranked[0].Name)
	assert.Equal(t, 0, ranked[0].MissionLoad)
	assert.Equal(t, "Хаб A", ranked[1].Name)
	assert.Equal(t, 3, ranked[1].MissionLoad)
}

func TestHaversineKm(t *testing.T) {
	// Москва -> Санкт-Петербург, около 634 км по большому кругу
	distance := haversineKm(55.7558, 37.6173, 59.9311, 30.3609)
	assert.InDelta(t, 634, distance, 5)

	// Нулевая дистанция до самого себя
	assert.InDelta(t, 0, haversineKm(13.0827, 80.2707, 13.0827, 80.2707), 0.001)
}
