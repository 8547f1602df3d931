package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/2023FHIT047/crisisLink2/internal/service/mocks"
	"github.com/2023FHIT047/crisisLink2/internal/webhook"
	webhook_mocks "github.com/2023FHIT047/crisisLink2/internal/webhook/mocks"
)

// newTestAlertService создает сервис оповещений с мокированными зависимостями
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockIncidentRepository, *mocks.MockNotificationRepository, *mocks.MockReviewRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	notificationsMock := mocks.NewMockNotificationRepository(ctrl)
	reviewsMock := mocks.NewMockReviewRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewAlertService(incidentsMock, notificationsMock, reviewsMock, publisherMock, logger)
	return service.(*alertService), incidentsMock, notificationsMock, reviewsMock, publisherMock
}

func TestBroadcastAlert_Success(t *testing.T) {
	// Подготовка
	service, _, notificationsMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	notificationsMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *models.Notification) error {
			assert.Equal(t, "hazard", n.Type)
			assert.Equal(t, "critical", n.Priority)
			assert.Equal(t, "north", n.Sector)
			n.ID = uuid.New()
			return nil
		}).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.Event) {
			assert.Equal(t, webhook.EventBroadcast, event.Type)
			assert.Equal(t, "Эвакуация", event.Title)
			assert.Equal(t, "north", event.Sector)
		}).Return(nil).Times(1)

	// Действие
	notification, err := service.BroadcastAlert(ctx, coordinator(), "Эвакуация", "Покиньте сектор немедленно", "north")

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, notification.ID)
}

func TestBroadcastAlert_WebhookFailureTolerated(t *testing.T) {
	// Подготовка
	service, _, notificationsMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	// Трансляция уже сохранена, сбой доставки вебхука не откатывает ее
	notificationsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	// Действие
	notification, err := service.BroadcastAlert(ctx, coordinator(), "Эвакуация", "Покиньте сектор немедленно", "north")

	// Проверки
	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestBroadcastAlert_Forbidden(t *testing.T) {
	// Подготовка
	service, _, notificationsMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	notificationsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.BroadcastAlert(ctx, models.Actor{ID: uuid.New(), Role: models.RoleVolunteer}, "t", "m", "s")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListNotifications_Success(t *testing.T) {
	// Подготовка
	service, _, notificationsMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	expected := []*models.Notification{{ID: uuid.New(), Sector: "north"}}

	// Ожидания
	notificationsMock.EXPECT().ListNotifications(ctx, "north", 1, 20).Return(expected, nil).Times(1)

	// Действие
	notifications, err := service.ListNotifications(ctx, "north", 0, 500)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestCommandStats_Success(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, reviewsMock, _ := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	incidentsMock.EXPECT().Stats(ctx).Return(&models.IncidentStats{
		TotalIncidents:     10,
		TotalResolved:      7,
		CriticalStabilized: 2,
	}, nil).Times(1)
	reviewsMock.EXPECT().AverageRating(ctx).Return(4.5, nil).Times(1)

	// Действие
	stats, err := service.CommandStats(ctx, coordinator())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 70, stats.SuccessRate)
	assert.Equal(t, 4.5, stats.AverageReviewRating)
}

func TestCommandStats_NoIncidents(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, reviewsMock, _ := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	incidentsMock.EXPECT().Stats(ctx).Return(&models.IncidentStats{}, nil).Times(1)
	reviewsMock.EXPECT().AverageRating(ctx).Return(0.0, nil).Times(1)

	// Действие
	stats, err := service.CommandStats(ctx, coordinator())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, stats.SuccessRate)
}

func TestCommandStats_Forbidden(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, _, _ := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	incidentsMock.EXPECT().Stats(gomock.Any()).Times(0)

	// Действие
	_, err := service.CommandStats(ctx, models.Actor{ID: uuid.New(), Role: models.RoleVolunteer})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}
