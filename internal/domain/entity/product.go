package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product représente un produit suivi en stock, rattaché à une entité (magasin).
// La clé d'unicité est (Entite, Produit, Lot) ; un lot vide est une valeur à
// part entière. StockActuel est un solde maintenu au fil des mouvements ; il
// est nul (NULL) tant qu'aucune initialisation ne l'a posé et peut devenir
// négatif si les sorties dépassent le disponible.
type Product struct {
	ID             string
	Entite         string
	Produit        string
	Lot            string
	DatePeremption string // texte libre, conservé tel qu'importé
	StockInitial   decimal.Decimal
	StockActuel    *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
