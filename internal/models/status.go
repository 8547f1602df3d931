package models

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	StatusReported  IncidentStatus = "reported"
	StatusVerifying IncidentStatus = "verifying"
	StatusActive    IncidentStatus = "active"
	StatusResolved  IncidentStatus = "resolved"
	StatusDismissed IncidentStatus = "dismissed"
)

// Valid проверяет, что статус принадлежит закрытому множеству
func (s IncidentStatus) Valid() bool {
	switch s {
	case StatusReported, StatusVerifying, StatusActive, StatusResolved, StatusDismissed:
		return true
	}
	return false
}

// Terminal возвращает true для статусов, из которых нет переходов
func (s IncidentStatus) Terminal() bool {
	return s == StatusResolved || s == StatusDismissed
}

// transitions - единственная таблица допустимых переходов статуса.
// Все пути мутации статуса (включая неявную активацию при полевом
// отчете волонтера) проходят через CanTransitionTo.
var transitions = map[IncidentStatus][]IncidentStatus{
	StatusReported:  {StatusVerifying, StatusActive, StatusDismissed},
	StatusVerifying: {StatusActive, StatusDismissed},
	StatusActive:    {StatusResolved},
	StatusResolved:  {},
	StatusDismissed: {},
}

// CanTransitionTo проверяет допустимость перехода s -> next
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IncidentSeverity - серьезность инцидента, задается репортером при создании
type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "low"
	SeverityMedium   IncidentSeverity = "medium"
	SeverityHigh     IncidentSeverity = "high"
	SeverityCritical IncidentSeverity = "critical"
)

func (s IncidentSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// TaskStatus - статус задачи волонтера в рамках инцидента.
// Перезаписывается целиком при каждом полевом отчете, любой статус
// может следовать за любым.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// FeedbackStatus - статус обратной связи, имеет смысл после резолва инцидента
type FeedbackStatus string

const (
	FeedbackNone      FeedbackStatus = "none"
	FeedbackPending   FeedbackStatus = "pending"
	FeedbackContacted FeedbackStatus = "contacted"
	FeedbackCompleted FeedbackStatus = "completed"
)

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackNone, FeedbackPending, FeedbackContacted, FeedbackCompleted:
		return true
	}
	return false
}

// AssigneeKind - тип назначаемого ресурса
type AssigneeKind string

const (
	AssigneeVolunteer AssigneeKind = "volunteer"
	AssigneeCenter    AssigneeKind = "center"
)
