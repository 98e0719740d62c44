package entity

import "github.com/shopspring/decimal"

// RecapRow ligne du récapitulatif par produit : stock initial, totaux par
// type de mouvement (recalculés depuis le journal brut, indépendamment du
// solde stocké) et stock actuel tel qu'en base.
type RecapRow struct {
	Produit        string
	Lot            string
	DatePeremption string
	StockInitial   decimal.Decimal
	TotalEntrees   decimal.Decimal
	TotalSorties   decimal.Decimal
	TotalEndommage decimal.Decimal
	StockActuel    *decimal.Decimal
}
