package stock_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospstock/hospstock-api/internal/application/stock"
	"github.com/hospstock/hospstock-api/internal/domain"
)

var testEntites = []string{"Magasin 3", "Magasin 1 – Etage 3"}

func importHeaders() []string {
	return []string{"Entite", "Produit", "Lot", "Date_peremption", "Stock_initial"}
}

func importRow(entite, produit, lot, date, stock string) map[string]string {
	return map[string]string{
		"Entite":          entite,
		"Produit":         produit,
		"Lot":             lot,
		"Date_peremption": date,
		"Stock_initial":   stock,
	}
}

func TestImportBatch_ColonnesManquantes(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	table := &stock.ImportTable{
		Headers: []string{"Entite", "Produit"},
		Rows: []map[string]string{
			{"Entite": "Magasin 3", "Produit": "Gants L"},
		},
	}

	summary, err := uc.ImportBatch(table)
	require.Error(t, err)
	assert.Nil(t, summary)

	var schemaErr *domain.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.ElementsMatch(t, []string{"Lot", "Date_peremption", "Stock_initial"}, schemaErr.Missing)

	// aucune ligne traitée quand la structure est invalide
	assert.Empty(t, repo.byID)
}

func TestImportBatch_EntetesAvecAccentsEtCasse(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	// Variantes accentuées et majuscules des en-têtes attendus.
	table := &stock.ImportTable{
		Headers: []string{"Entité", "PRODUIT", "Lot", "Date_péremption", "Stock_Initial"},
		Rows: []map[string]string{
			{
				"Entité":          "Magasin 3",
				"PRODUIT":         "Compresses stériles",
				"Lot":             "L-001",
				"Date_péremption": "2027-03-01",
				"Stock_Initial":   "12",
			},
		},
	}

	summary, err := uc.ImportBatch(table)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 0, summary.Skipped)

	p := repo.byKey[productKey("Magasin 3", "Compresses stériles", "L-001")]
	require.NotNil(t, p)
	assert.Equal(t, "2027-03-01", p.DatePeremption)
	assert.True(t, p.StockInitial.Equal(decimal.NewFromInt(12)))
}

func TestImportBatch_EntiteInconnueIgnoree(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	table := &stock.ImportTable{
		Headers: importHeaders(),
		Rows: []map[string]string{
			importRow("Magasin 3", "Gants L", "L-1", "", "100"),
			importRow("Pharmacie Centrale", "Gants L", "L-1", "", "50"),
		},
	}

	summary, err := uc.ImportBatch(table)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, repo.byID, 1)
}

func TestImportBatch_CellulesRogneesAvantCle(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	// " Gants L " et "Gants L" désignent le même produit après rognage.
	table := &stock.ImportTable{
		Headers: importHeaders(),
		Rows: []map[string]string{
			importRow("Magasin 3", "  Gants L  ", " L-1 ", "", "100"),
			importRow("  Magasin 3", "Gants L", "L-1", "", "100"),
		},
	}

	summary, err := uc.ImportBatch(table)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)
	assert.Len(t, repo.byID, 1)
	assert.NotNil(t, repo.byKey[productKey("Magasin 3", "Gants L", "L-1")])
}

func TestImportBatch_CellulesVidesNormalisees(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	table := &stock.ImportTable{
		Headers: importHeaders(),
		Rows: []map[string]string{
			importRow("Magasin 3", "Seringues 5ml", "", "", ""),
		},
	}

	summary, err := uc.ImportBatch(table)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	p := repo.byKey[productKey("Magasin 3", "Seringues 5ml", "")]
	require.NotNil(t, p)
	assert.Equal(t, "", p.Lot)
	assert.Equal(t, "", p.DatePeremption)
	assert.True(t, p.StockInitial.IsZero())
}

func TestImportBatch_QuantiteIllisibleLigneIgnoree(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	table := &stock.ImportTable{
		Headers: importHeaders(),
		Rows: []map[string]string{
			importRow("Magasin 3", "Gants L", "L-1", "", "beaucoup"),
			importRow("Magasin 3", "Gants M", "L-2", "", "40"),
		},
	}

	summary, err := uc.ImportBatch(table)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
	assert.Nil(t, repo.byKey[productKey("Magasin 3", "Gants L", "L-1")])
	assert.NotNil(t, repo.byKey[productKey("Magasin 3", "Gants M", "L-2")])
}

func TestImportBatch_EchecUpsertLigneIgnoree(t *testing.T) {
	repo := newFakeProductRepo()
	repo.upsertErr = errors.New("connexion perdue")
	uc := stock.NewImportUseCase(repo, testEntites)

	table := &stock.ImportTable{
		Headers: importHeaders(),
		Rows: []map[string]string{
			importRow("Magasin 3", "Gants L", "L-1", "", "10"),
			importRow("Magasin 3", "Gants M", "L-2", "", "20"),
		},
	}

	summary, err := uc.ImportBatch(table)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Skipped)
}

func TestImportBatch_ReImportIdempotent(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	table := &stock.ImportTable{
		Headers: importHeaders(),
		Rows: []map[string]string{
			importRow("Magasin 3", "Gants L", "L-1", "2026-12-01", "100"),
		},
	}

	_, err := uc.ImportBatch(table)
	require.NoError(t, err)
	_, err = uc.ImportBatch(table)
	require.NoError(t, err)

	// Même clé : une seule ligne produit, stock actuel inchangé.
	require.Len(t, repo.byID, 1)
	p := repo.byKey[productKey("Magasin 3", "Gants L", "L-1")]
	require.NotNil(t, p.StockActuel)
	assert.True(t, p.StockActuel.Equal(decimal.NewFromInt(100)))
}

func TestImportBatch_ReImportPreserveLeStockConsomme(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	premiere := &stock.ImportTable{
		Headers: importHeaders(),
		Rows:    []map[string]string{importRow("Magasin 3", "Gants L", "L-1", "", "100")},
	}
	_, err := uc.ImportBatch(premiere)
	require.NoError(t, err)

	// Des sorties ont eu lieu depuis le premier import.
	p := repo.byKey[productKey("Magasin 3", "Gants L", "L-1")]
	require.NoError(t, repo.ApplyStockDelta(p.ID, decimal.NewFromInt(-60)))

	seconde := &stock.ImportTable{
		Headers: importHeaders(),
		Rows:    []map[string]string{importRow("Magasin 3", "Gants L", "L-1", "2027-01-01", "120")},
	}
	_, err = uc.ImportBatch(seconde)
	require.NoError(t, err)

	// Stock initial et métadonnées rafraîchis, stock actuel non nul préservé.
	assert.True(t, p.StockInitial.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, "2027-01-01", p.DatePeremption)
	assert.True(t, p.StockActuel.Equal(decimal.NewFromInt(40)))
}

func TestImportBatch_ReImportRemplaceLeStockEpuise(t *testing.T) {
	repo := newFakeProductRepo()
	uc := stock.NewImportUseCase(repo, testEntites)

	premiere := &stock.ImportTable{
		Headers: importHeaders(),
		Rows:    []map[string]string{importRow("Magasin 3", "Gants L", "L-1", "", "100")},
	}
	_, err := uc.ImportBatch(premiere)
	require.NoError(t, err)

	// Stock entièrement consommé : le réimport réamorce le solde.
	p := repo.byKey[productKey("Magasin 3", "Gants L", "L-1")]
	require.NoError(t, repo.ApplyStockDelta(p.ID, decimal.NewFromInt(-100)))

	seconde := &stock.ImportTable{
		Headers: importHeaders(),
		Rows:    []map[string]string{importRow("Magasin 3", "Gants L", "L-1", "", "80")},
	}
	_, err = uc.ImportBatch(seconde)
	require.NoError(t, err)

	require.NotNil(t, p.StockActuel)
	assert.True(t, p.StockActuel.Equal(decimal.NewFromInt(80)))
}
