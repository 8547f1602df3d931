package service

import "errors"

// Ошибки доменного ядра. Хэндлеры сопоставляют их с HTTP-статусами через
// errors.Is, пользователю никогда не показывается сырая ошибка хранилища.
var (
	// ErrNotFound - запрошенная сущность не существует
	ErrNotFound = errors.New("requested record not found")

	// ErrInvalidState - операция запрещена текущим статусом инцидента
	ErrInvalidState = errors.New("operation is not allowed for the current incident status")

	// ErrVolunteerOffline - волонтер оффлайн и не может получить назначение
	ErrVolunteerOffline = errors.New("unit is offline and cannot receive mission parameters")

	// ErrMissionConflict - волонтер уже занят в другом незакрытом инциденте
	ErrMissionConflict = errors.New("unit is already engaged in an active mission")

	// ErrCenterCapacity - хаб достиг лимита одновременных миссий
	ErrCenterCapacity = errors.New("hub has reached its mission capacity")

	// ErrNotAssigned - волонтер не назначен на инцидент и не может слать отчеты
	ErrNotAssigned = errors.New("volunteer is not assigned to this incident")

	// ErrForbidden - роль действующего лица не допускает операцию
	ErrForbidden = errors.New("actor role is not permitted to perform this operation")

	// ErrNoReporterContact - у репортера нет телефона для голосового дебрифинга
	ErrNoReporterContact = errors.New("no phone contact available for the incident reporter")
)
