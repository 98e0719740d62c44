package entity

import "time"

// Rôles applicatifs.
const (
	RoleAdmin      = "admin"      // import et administration
	RoleMagasinier = "magasinier" // saisie des mouvements et rapports
)

// User utilisateur de l'API.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
}
