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
	"github.com/2023FHIT047/crisisLink2/internal/webhook"
	webhook_mocks "github.com/2023FHIT047/crisisLink2/internal/webhook/mocks"
)

// newTestDebriefService создает сервис дебрифинга с мокированными зависимостями
func newTestDebriefService(t *testing.T) (*debriefService, *mocks.MockIncidentRepository, *mocks.MockReviewRepository, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	reviewsMock := mocks.NewMockReviewRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewDebriefService(incidentsMock, reviewsMock, publisherMock, logger)
	return service.(*debriefService), incidentsMock, reviewsMock, publisherMock
}

func TestArchiveDebrief_Success(t *testing.T) {
	// Подготовка
	service, incidentsMock, reviewsMock, _ := newTestDebriefService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:             incidentID,
		Status:         models.StatusResolved,
		FeedbackStatus: models.FeedbackPending,
	}
	review := &models.Review{
		FullName:   "Координатор штаба",
		Role:       "coordinator",
		Content:    "Миссия закрыта без потерь",
		Rating:     5,
		IncidentID: &incidentID,
	}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	reviewsMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, r *models.Review) error {
			assert.True(t, r.IsVerified)
			r.ID = uuid.New()
			return nil
		}).Times(1)
	incidentsMock.EXPECT().SetFeedbackStatus(ctx, incidentID, models.FeedbackCompleted).Return(nil).Times(1)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	archived, err := service.ArchiveDebrief(ctx, coordinator(), review)

	// Проверки
	require.NoError(t, err)
	assert.True(t, archived.IsVerified)
	assert.NotEqual(t, uuid.Nil, archived.ID)
}

func TestArchiveDebrief_WithoutIncident(t *testing.T) {
	// Подготовка
	service, incidentsMock, reviewsMock, _ := newTestDebriefService(t)
	ctx := context.Background()
	review := &models.Review{
		FullName: "Координатор штаба",
		Content:  "Общий отзыв без привязки к инциденту",
		Rating:   4,
	}

	// Ожидания
	// Без привязки к инциденту нет ни проверки статуса, ни завершения обратной связи
	incidentsMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	incidentsMock.EXPECT().SetFeedbackStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	reviewsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	archived, err := service.ArchiveDebrief(ctx, coordinator(), review)

	// Проверки
	require.NoError(t, err)
	assert.True(t, archived.IsVerified)
}

func TestArchiveDebrief_IncidentNotResolved(t *testing.T) {
	// Подготовка
	service, incidentsMock, reviewsMock, _ := newTestDebriefService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive}
	review := &models.Review{FullName: "Координатор", Content: "Рано", Rating: 3, IncidentID: &incidentID}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	reviewsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	archived, err := service.ArchiveDebrief(ctx, coordinator(), review)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, archived)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestArchiveDebrief_DuplicateIsLoggedNotRejected(t *testing.T) {
	// Подготовка
	service, incidentsMock, reviewsMock, _ := newTestDebriefService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:             incidentID,
		Status:         models.StatusResolved,
		FeedbackStatus: models.FeedbackCompleted,
	}
	review := &models.Review{FullName: "Координатор", Content: "Повторный дебриф", Rating: 4, IncidentID: &incidentID}

	// Ожидания
	// Повторный дебриф по завершенному инциденту создает еще один отзыв
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	reviewsMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	incidentsMock.EXPECT().SetFeedbackStatus(ctx, incidentID, models.FeedbackCompleted).Return(nil).Times(1)
	incidentsMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	_, err := service.ArchiveDebrief(ctx, coordinator(), review)

	// Проверки
	require.NoError(t, err)
}

func TestArchiveDebrief_Forbidden(t *testing.T) {
	// Подготовка
	service, _, reviewsMock, _ := newTestDebriefService(t)
	ctx := context.Background()

	// Ожидания
	reviewsMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.ArchiveDebrief(ctx, models.Actor{ID: uuid.New(), Role: models.RoleVolunteer}, &models.Review{})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestInitiateVoiceDebrief_Success(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, publisherMock := newTestDebriefService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		ID:            incidentID,
		Status:        models.StatusResolved,
		ReporterName:  "Репортер",
		ReporterPhone: "+79990001122",
	}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.Event) {
			assert.Equal(t, webhook.EventVoiceDebrief, event.Type)
			assert.Equal(t, "Репортер", event.Name)
			assert.Equal(t, "+79990001122", event.Phone)
			require.NotNil(t, event.IncidentID)
			assert.Equal(t, incidentID, *event.IncidentID)
		}).Return(nil).Times(1)

	// Действие
	err := service.InitiateVoiceDebrief(ctx, coordinator(), incidentID)

	// Проверки
	require.NoError(t, err)
	// Никаких SetFeedbackStatus: исход звонка попадет в систему через ArchiveDebrief
}

func TestInitiateVoiceDebrief_NoPhone(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, publisherMock := newTestDebriefService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusResolved}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.InitiateVoiceDebrief(ctx, coordinator(), incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoReporterContact)
}

func TestInitiateVoiceDebrief_NotResolved(t *testing.T) {
	// Подготовка
	service, incidentsMock, _, publisherMock := newTestDebriefService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Status: models.StatusActive, ReporterPhone: "+79990001122"}

	// Ожидания
	incidentsMock.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.InitiateVoiceDebrief(ctx, coordinator(), incidentID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestListReviews_Success(t *testing.T) {
	// Подготовка
	service, _, reviewsMock, _ := newTestDebriefService(t)
	ctx := context.Background()
	expected := []*models.Review{
		{ID: uuid.New(), FullName: "Координатор", Rating: 5},
	}

	// Ожидания
	reviewsMock.EXPECT().ListReviews(ctx, 1, 20).Return(expected, nil).Times(1)

	// Действие
	reviews, err := service.ListReviews(ctx, 0, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}
