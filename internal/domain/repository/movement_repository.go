package repository

import "github.com/hospstock/hospstock-api/internal/domain/entity"

// MovementRepository définit le port de persistance des mouvements (DIP).
// Journal en append seul : pas d'update ni de delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListByEntite retourne les mouvements des produits de l'entité, joints
	// aux champs d'identité du produit, triés par horodatage décroissant.
	ListByEntite(entite string) ([]*entity.MovementWithProduct, error)
}
