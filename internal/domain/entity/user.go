package entity

import "time"

// Roles válidos para User. Un único espacio de actores con variantes,
// en lugar de tablas separadas de usuarios y veterinarios.
const (
	RoleAdmin       = "admin"
	RoleVeterinario = "veterinario"
	RoleCliente     = "cliente"
)

// User representa un actor del sistema (cliente, veterinario o administrador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, veterinario, cliente
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanPrescribe indica si el actor puede administrar medicamentos.
func (u *User) CanPrescribe() bool {
	return u.Role == RoleVeterinario || u.Role == RoleAdmin
}
