package repository

import (
	"github.com/shopspring/decimal"

	"github.com/hospstock/hospstock-api/internal/domain/entity"
)

// ProductRepository définit le port de persistance des produits (DIP).
type ProductRepository interface {
	// Upsert insère le produit ou met à jour celui qui porte la même clé
	// (entite, produit, lot). À la mise à jour : date_peremption et
	// stock_initial sont écrasés ; stock_actuel n'est remplacé par le nouveau
	// stock_initial que s'il est NULL ou exactement zéro, sinon il est
	// conservé. Retourne l'ID du produit résultant.
	Upsert(entite, produit, lot, datePeremption string, stockInitial decimal.Decimal) (string, error)
	GetByID(id string) (*entity.Product, error)
	// ListByEntite retourne les produits de l'entité, triés par nom de
	// produit croissant. Séquence vide si aucun.
	ListByEntite(entite string) ([]*entity.Product, error)
	// ApplyStockDelta incrémente stock_actuel (COALESCE à 0 si NULL) du delta
	// signé, en une seule instruction conditionnelle. Retourne ErrNotFound si
	// l'ID ne référence aucun produit.
	ApplyStockDelta(id string, delta decimal.Decimal) error
}
