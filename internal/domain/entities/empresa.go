package entities

// Empresa is a company whose guards produce patrol reports.
//
// Nome is unique among active companies. Usuarios is only filled when a read
// asks for IncludeUsuarios.
type Empresa struct {
	Base
	Nome     string    `json:"nome"`
	Usuarios []Usuario `json:"usuarios,omitempty"`
}
