package adoptions

import "time"

// HistoryEntry es append-only. Username es copia desnormalizada:
// se conserva aunque el usuario cambie después.
type HistoryEntry struct {
	ID        string
	PetID     string
	UserID    string
	Username  string
	AdoptedAt time.Time
}

// UserRef es la proyección mínima que devuelve user-service.
type UserRef struct {
	ID       string
	Username string
}
