package dto

// Estados de readiness del workspace (tri-estado: las vistas de admin
// distinguen "resolviendo" de "no listo").
const (
	ReadyUnknown = "unknown"
	ReadyNo      = "no"
	ReadyYes     = "yes"
)

// WorkspaceResponse contexto de workspace resuelto por el bootstrap de sesión.
type WorkspaceResponse struct {
	Role       string           `json:"role"`
	CompanyID  string           `json:"company_id"`
	FiscalYear string           `json:"fiscal_year"`
	Company    *CompanyResponse `json:"company"` // nil si no se pudo materializar
	Ready      bool             `json:"ready"`
	ReadyState string           `json:"ready_state"` // unknown, no, yes
}

// SessionResponse salida de GET /api/session: workspace + destino calculado
// por el route guard para el path actual ("" = permanecer).
type SessionResponse struct {
	Workspace   WorkspaceResponse `json:"workspace"`
	Destination string            `json:"destination"`
}
