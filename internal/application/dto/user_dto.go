package dto

import "time"

// RegisterRequest entrada para registro público (auth). El perfil se crea con
// rol "user" sin empresa ni año fiscal; el aprovisionamiento lo hace un admin.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT, workspace resuelto y destino de ruta.
type LoginResponse struct {
	Token       string            `json:"token"`
	User        UserResponse      `json:"user"`
	Workspace   WorkspaceResponse `json:"workspace"`
	Destination string            `json:"destination"`
}

// CreateUserRequest entrada de aprovisionamiento admin: crea el perfil y el
// registro de membresía del rol en una sola transacción.
type CreateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Role         string `json:"role" validate:"required,oneof=admin operator driver customer supplier"`
	CompanyID    string `json:"company_id" validate:"omitempty"`
	FiscalYearID string `json:"fiscal_year_id" validate:"omitempty"`

	// Campos de conductor
	VehicleType   string `json:"vehicle_type,omitempty"`
	VehiclePlate  string `json:"vehicle_plate,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`

	// Campos de cliente
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`

	// Campos de proveedor
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	CompanyID         string    `json:"company_id"`
	CurrentFiscalYear string    `json:"current_fiscal_year"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
