package entities

// Funcao is the role of a user inside the system.
type Funcao int

const (
	// FuncaoAdministrador administers the whole system.
	FuncaoAdministrador Funcao = 1
	// FuncaoAdminEmpresa administers a single company.
	FuncaoAdminEmpresa Funcao = 2
	// FuncaoVigilante is the guard that performs the patrols.
	FuncaoVigilante Funcao = 3
)

func (f Funcao) Valid() bool {
	return f >= FuncaoAdministrador && f <= FuncaoVigilante
}

func (f Funcao) String() string {
	switch f {
	case FuncaoAdministrador:
		return "administrador"
	case FuncaoAdminEmpresa:
		return "admin_empresa"
	case FuncaoVigilante:
		return "vigilante"
	default:
		return "desconhecida"
	}
}

// Usuario is a person with access to the system; guards (vigilantes) are users.
//
// Domain notes:
//   - Nome and Email are each unique among active users.
//   - HashSenha holds only the one-way hash of the password and is never serialized.
type Usuario struct {
	Base
	Nome      string   `json:"nome"`
	Email     string   `json:"email"`
	HashSenha string   `json:"-"`
	EmpresaID int      `json:"empresaId"`
	Funcao    Funcao   `json:"funcao"`
	Empresa   *Empresa `json:"empresa,omitempty"`
}
