package pets

import (
	"strings"
	"time"
)

// Species es texto libre; se normaliza a minúsculas para que "Dog" y "dog" coincidan.
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

func NormalizeSpecies(s string) Species {
	return Species(strings.ToLower(strings.TrimSpace(s)))
}

// Pet representa una mascota del refugio.
// Invariante: UserID != nil si y solo si Adopted.
type Pet struct {
	ID string

	Name    string
	Species Species
	Age     int

	Adopted bool
	UserID  *string // dueño (adoptante), nil mientras está disponible

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy indica si la mascota pertenece a userID.
func (p Pet) OwnedBy(userID string) bool {
	return p.UserID != nil && *p.UserID == userID
}

// Filter: campos nil = sin restricción. Se combinan con AND.
type Filter struct {
	Species *Species
	Adopted *bool
}

func (f Filter) Match(p Pet) bool {
	if f.Species != nil && p.Species != *f.Species {
		return false
	}
	if f.Adopted != nil && p.Adopted != *f.Adopted {
		return false
	}
	return true
}
