package entity

import "time"

// Roles de plataforma válidos para Usuario (autorización gruesa vía JWT;
// la autorización fina por funcionalidad vive en el modelo RBAC).
const (
	RolPlataformaAdmin   = "admin"
	RolPlataformaSoporte = "soporte"
	RolPlataformaUsuario = "usuario"
)

// Usuario representa un usuario del sistema (pertenece a una Empresa).
type Usuario struct {
	ID           string
	EmpresaID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, soporte, usuario
	Estado       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
