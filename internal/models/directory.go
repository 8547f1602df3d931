package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile - запись реестра пользователей. Ядро читает из нее только
// гейты (роль, одобрение, присутствие), остальные поля принадлежат
// внешнему провайдеру идентичности.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	City            string    `json:"city"`
	FullName        string    `json:"full_name,omitempty"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	IsApproved      bool      `json:"is_approved"`
	IsOnline        bool      `json:"is_online"`
	Specialization  string    `json:"specialization,omitempty"`
	ExperienceYears int       `json:"experience_years,omitempty"`
	BloodGroup      string    `json:"blood_group,omitempty"`
}

// Volunteer - полевая единица, привязанная к профилю
type Volunteer struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	FullName  string    `json:"full_name"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
	Skills    []string  `json:"skills"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsOnline  bool      `json:"is_online"`
}

// ResourceCenter - логистический хаб, может быть привязан к инциденту
type ResourceCenter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Type      string    `json:"type"`
}

// RankedVolunteer - кандидат на назначение, отсортированный по удаленности
type RankedVolunteer struct {
	Volunteer
	DistanceKm    float64 `json:"distance_km"`
	BusyElsewhere bool    `json:"busy_elsewhere"`
}

// RankedCenter - хаб-кандидат с текущей миссионной нагрузкой
type RankedCenter struct {
	ResourceCenter
	DistanceKm  float64 `json:"distance_km"`
	MissionLoad int     `json:"mission_load"`
}

// Review - артефакт закрытия инцидента, создается один раз и не обновляется
type Review struct {
	ID         uuid.UUID  `json:"id"`
	FullName   string     `json:"full_name"`
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	Rating     int        `json:"rating"`
	IsVerified bool       `json:"is_verified"`
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Notification - секторное оповещение (экстренная трансляция и др.)
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Sector    string    `json:"sector,omitempty"`
	Priority  string    `json:"priority,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
