package models

import (
	"time"

	"github.com/google/uuid"
)

// Incident представляет сообщение об опасности и состояние реагирования на него.
// Назначения, задачи и полевые отчеты хранятся дочерними строками
// (incident_assignments, volunteer_tasks, field_reports) и гидрируются при чтении.
type Incident struct {
	ID             uuid.UUID                 `json:"id"`
	Title          string                    `json:"title"`
	Description    string                    `json:"description"`
	Address        string                    `json:"address,omitempty"`
	City           string                    `json:"city"`
	Latitude       float64                   `json:"latitude"`
	Longitude      float64                   `json:"longitude"`
	ImageURL       string                    `json:"image_url,omitempty"`
	Severity       IncidentSeverity          `json:"severity"`
	Status         IncidentStatus            `json:"status"`
	Verified       bool                      `json:"verified"`
	ReporterID     uuid.UUID                 `json:"reporter_id"`
	ReporterName   string                    `json:"reporter_name,omitempty"`
	ReporterPhone  string                    `json:"reporter_phone,omitempty"`
	FeedbackStatus FeedbackStatus            `json:"feedback_status"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`

	AssignedVolunteers []uuid.UUID              `json:"assigned_volunteers"`
	AssignedCenters    []uuid.UUID              `json:"assigned_centers"`
	VolunteerTasks     map[uuid.UUID]TaskStatus `json:"volunteer_tasks"`
	FieldReports       []*FieldReport           `json:"field_reports"`
}

// FieldReport - запись полевого отчета (SitRep), только добавляется, не редактируется
type FieldReport struct {
	ID            int64     `json:"id"`
	IncidentID    uuid.UUID `json:"incident_id"`
	VolunteerID   uuid.UUID `json:"volunteer_id"`
	VolunteerName string    `json:"volunteer_name"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasVolunteer проверяет членство волонтера в назначениях инцидента
func (i *Incident) HasVolunteer(id uuid.UUID) bool {
	for _, v := range i.AssignedVolunteers {
		if v == id {
			return true
		}
	}
	return false
}

// HasCenter проверяет членство центра в назначениях инцидента
func (i *Incident) HasCenter(id uuid.UUID) bool {
	for _, c := range i.AssignedCenters {
		if c == id {
			return true
		}
	}
	return false
}

// IncidentFilter - параметры выборки инцидентов
type IncidentFilter struct {
	City            string
	IncludeResolved bool
	Page            int
	PageSize        int
}

// IncidentStats - сводные метрики для командной панели
type IncidentStats struct {
	TotalIncidents      int     `json:"total_incidents"`
	TotalResolved       int     `json:"total_resolved"`
	SuccessRate         int     `json:"success_rate"`
	CriticalStabilized  int     `json:"critical_stabilized"`
	AverageReviewRating float64 `json:"average_review_rating"`
}
