package excel_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/infrastructure/excel"
)

func TestWorkbookWriter_Export(t *testing.T) {
	stockActuel := decimal.NewFromInt(65)
	recap := []entity.RecapRow{
		{
			Produit:        "Gants L",
			Lot:            "L-1",
			DatePeremption: "2027-01-01",
			StockInitial:   decimal.NewFromInt(100),
			TotalSorties:   decimal.NewFromInt(30),
			TotalEndommage: decimal.NewFromInt(5),
			StockActuel:    &stockActuel,
		},
		{
			// solde inconnu : cellule laissée vide
			Produit:      "Compresses",
			StockInitial: decimal.NewFromInt(50),
		},
	}
	movements := []*entity.MovementWithProduct{
		{
			Movement: entity.Movement{
				ID:        "m-1",
				ProduitID: "p-1",
				Type:      entity.MovementTypeSortie,
				Quantite:  decimal.NewFromInt(30),
				Service:   "Urgences",
				TS:        time.Date(2026, 8, 30, 14, 20, 0, 0, time.UTC),
			},
			Entite:  "Magasin 3",
			Produit: "Gants L",
			Lot:     "L-1",
		},
	}
	products := []*entity.Product{
		{ID: "p-1", Entite: "Magasin 3", Produit: "Gants L", Lot: "L-1", StockInitial: decimal.NewFromInt(100), StockActuel: &stockActuel},
	}

	path := filepath.Join(t.TempDir(), "Rapport_Magasin_3_20260830_1420.xlsx")
	require.NoError(t, excel.NewWorkbookWriter().Export(path, recap, movements, products))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{excel.SheetRecap, excel.SheetMouvements, excel.SheetProduits},
		f.GetSheetList())

	rows, err := f.GetRows(excel.SheetRecap)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"Produit", "Lot", "Date péremption", "Stock initial",
		"Total entrées", "Total sorties", "Total endommagé", "Stock actuel",
	}, rows[0])
	assert.Equal(t, []string{"Gants L", "L-1", "2027-01-01", "100", "0", "30", "5", "65"}, rows[1])
	// dernière cellule vide donc absente de la ligne relue
	assert.Equal(t, "Compresses", rows[2][0])
	assert.Less(t, len(rows[2]), 8)

	mouv, err := f.GetRows(excel.SheetMouvements)
	require.NoError(t, err)
	require.Len(t, mouv, 2)
	assert.Equal(t, "Sortie", mouv[1][2])
	assert.Equal(t, "2026-08-30 14:20:00", mouv[1][5])

	prod, err := f.GetRows(excel.SheetProduits)
	require.NoError(t, err)
	require.Len(t, prod, 2)
	assert.Equal(t, "Gants L", prod[1][2])
}
