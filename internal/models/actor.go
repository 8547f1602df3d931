package models

import "github.com/google/uuid"

// Role - роль действующего пользователя, разрешается внешним провайдером идентичности
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleCommunity       Role = "community"
	RoleVolunteer       Role = "volunteer"
	RoleResourceManager Role = "resource_manager"
	RoleCoordinator     Role = "coordinator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCommunity, RoleVolunteer, RoleResourceManager, RoleCoordinator:
		return true
	}
	return false
}

// Actor - явный параметр действующего лица для всех операций ядра.
// Сессия и разрешение ролей живут снаружи, ядро получает готовый снимок.
type Actor struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
	Online bool      `json:"online"`
}

// CanCommand возвращает true для ролей, которым разрешены координационные операции
func (a Actor) CanCommand() bool {
	return a.Role == RoleCoordinator || a.Role == RoleAdmin
}
