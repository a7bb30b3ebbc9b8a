package entities

import "time"

// Activatable is the capability shared by every persisted entity: a surrogate id
// and the Ativo liveness flag. Generic store and guard code is written against it.
type Activatable interface {
	GetID() int
	IsAtivo() bool
}

// Base carries the fields every table has.
//
//   - ID is assigned by the store on insert.
//   - Ativo defaults to true; "desativar" flips it and normal reads skip the row.
//   - CriadoEm is set once by the store and never rewritten by an update.
type Base struct {
	ID       int       `json:"id"`
	Ativo    bool      `json:"ativo"`
	CriadoEm time.Time `json:"criadoEm"`
}

var _ Activatable = Base{}

func (b Base) GetID() int {
	return b.ID
}

func (b Base) IsAtivo() bool {
	return b.Ativo
}

// Found reports whether a lookup resolved to a live row.
func Found(e Activatable) bool {
	return e.GetID() != 0 && e.IsAtivo()
}

// Include selects which related rows a read attaches to its result. Reads never
// load relations implicitly; callers name the ones they will serialize.
type Include uint8

const (
	IncludeEmpresa Include = 1 << iota
	IncludeVigilante
	IncludeVoltas
	IncludeRelatorio
	IncludeUsuarios

	IncludeNone Include = 0
)

func (i Include) Has(flag Include) bool {
	return i&flag != 0
}

// Dia truncates t to the start of its calendar day, keeping its location.
func Dia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MesmoDia compares the calendar dates of a and b, each in its own location.
func MesmoDia(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
