package v1

import (
	"time"

	"github.com/2023FHIT047/crisisLink2/internal/models"
	"github.com/google/uuid"
)

// ReportIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type ReportIncidentRequest struct {
	Title         string  `json:"title" validate:"required,min=2,max=255"`
	Description   string  `json:"description,omitempty"`
	Address       string  `json:"address,omitempty"`
	City          string  `json:"city" validate:"required"`
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
	ImageURL      string  `json:"image_url,omitempty"`
	Severity      string  `json:"severity" validate:"required,oneof=low medium high critical"`
	ReporterName  string  `json:"reporter_name,omitempty"`
	ReporterPhone string  `json:"reporter_phone,omitempty"`
	// Verified - вердикт внешнего ИИ-верификатора, ядро его не пересчитывает
	Verified bool `json:"verified"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                 uuid.UUID                       `json:"id"`
	Title              string                          `json:"title"`
	Description        string                          `json:"description,omitempty"`
	Address            string                          `json:"address,omitempty"`
	City               string                          `json:"city"`
	Latitude           float64                         `json:"latitude"`
	Longitude          float64                         `json:"longitude"`
	ImageURL           string                          `json:"image_url,omitempty"`
	Severity           models.IncidentSeverity         `json:"severity"`
	Status             models.IncidentStatus           `json:"status"`
	Verified           bool                            `json:"verified"`
	ReporterID         uuid.UUID                       `json:"reporter_id"`
	ReporterName       string                          `json:"reporter_name,omitempty"`
	ReporterPhone      string                          `json:"reporter_phone,omitempty"`
	FeedbackStatus     models.FeedbackStatus           `json:"feedback_status"`
	AssignedVolunteers []uuid.UUID                     `json:"assigned_volunteers"`
	AssignedCenters    []uuid.UUID                     `json:"assigned_centers"`
	VolunteerTasks     map[uuid.UUID]models.TaskStatus `json:"volunteer_tasks"`
	FieldReports       []*models.FieldReport           `json:"field_reports"`
	CreatedAt          time.Time                       `json:"created_at"`
	UpdatedAt          time.Time                       `json:"updated_at"`
}

// AssignRequest DTO для назначения волонтера или центра
// @Description DTO для назначения волонтера или центра
type AssignRequest struct {
	AssigneeID uuid.UUID `json:"assignee_id" validate:"required"`
}

// FieldUpdateRequest DTO для полевого отчета волонтера
// @Description DTO для полевого отчета волонтера
type FieldUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
	Report string `json:"report,omitempty"`
}

// ArchiveDebriefRequest DTO для архивации дебрифинга
// @Description DTO для архивации дебрифинга
type ArchiveDebriefRequest struct {
	FullName   string     `json:"full_name" validate:"required,min=2,max=255"`
	Role       string     `json:"role" validate:"required"`
	Content    string     `json:"content" validate:"required"`
	Rating     int        `json:"rating" validate:"required,min=1,max=5"`
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
}

// ReviewResponse DTO для ответа с отзывом
// @Description DTO для ответа с отзывом
type ReviewResponse struct {
	ID         uuid.UUID  `json:"id"`
	FullName   string     `json:"full_name"`
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	Rating     int        `json:"rating"`
	IsVerified bool       `json:"is_verified"`
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// BroadcastRequest DTO для экстренной секторной трансляции
// @Description DTO для экстренной секторной трансляции
type BroadcastRequest struct {
	Title   string `json:"title" validate:"required,min=2,max=255"`
	Message string `json:"message" validate:"required"`
	Sector  string `json:"sector" validate:"required"`
}

// PresenceRequest DTO для переключения флага присутствия
// @Description DTO для переключения флага присутствия
type PresenceRequest struct {
	Online *bool `json:"online" validate:"required"`
}

// StatsResponse DTO для ответа с командными метриками
// @Description DTO для ответа с командными метриками
type StatsResponse struct {
	TotalIncidents      int     `json:"total_incidents"`
	TotalResolved       int     `json:"total_resolved"`
	SuccessRate         int     `json:"success_rate"`
	CriticalStabilized  int     `json:"critical_stabilized"`
	AverageReviewRating float64 `json:"average_review_rating"`
}
