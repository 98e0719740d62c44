package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body pour POST /api/stock/mouvements.
type RegisterMovementRequest struct {
	ProduitID   string          `json:"produit_id"`
	Type        string          `json:"type"` // Entree, Sortie, Endommage
	Quantite    decimal.Decimal `json:"quantite"`
	Service     string          `json:"service,omitempty"`
	Commentaire string          `json:"commentaire,omitempty"`
}

// ProductResponse sortie d'un produit.
type ProductResponse struct {
	ID             string           `json:"id"`
	Entite         string           `json:"entite"`
	Produit        string           `json:"produit"`
	Lot            string           `json:"lot"`
	DatePeremption string           `json:"date_peremption"`
	StockInitial   decimal.Decimal  `json:"stock_initial"`
	StockActuel    *decimal.Decimal `json:"stock_actuel"`
}

// MovementResponse sortie d'un mouvement joint à son produit.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProduitID   string          `json:"produit_id"`
	Type        string          `json:"type"`
	Quantite    decimal.Decimal `json:"quantite"`
	Service     string          `json:"service"`
	TS          time.Time       `json:"ts"`
	Commentaire string          `json:"commentaire"`
	Entite      string          `json:"entite"`
	Produit     string          `json:"produit"`
	Lot         string          `json:"lot"`
}

// RecapRowResponse ligne du récapitulatif par produit.
type RecapRowResponse struct {
	Produit        string           `json:"produit"`
	Lot            string           `json:"lot"`
	DatePeremption string           `json:"date_peremption"`
	StockInitial   decimal.Decimal  `json:"stock_initial"`
	TotalEntrees   decimal.Decimal  `json:"total_entrees"`
	TotalSorties   decimal.Decimal  `json:"total_sorties"`
	TotalEndommage decimal.Decimal  `json:"total_endommage"`
	StockActuel    *decimal.Decimal `json:"stock_actuel"`
}

// ImportSummaryResponse bilan d'un import best-effort.
type ImportSummaryResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ExportResponse chemin du fichier généré.
type ExportResponse struct {
	Fichier string `json:"fichier"`
}
