package excel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/infrastructure/excel"
)

func TestReadVerificationTable(t *testing.T) {
	// colonnes dans le désordre, une colonne étrangère, "Qté réelle" absente
	r := buildWorkbook(t, [][]any{
		{"Statut", "Produit", "Observations", "Qté théorique", "Écart", "Sorties", "Commentaire"},
		{"Conforme", "Gants L", "rangée A", "100", "0", "30", ""},
		{"Manquant", "Compresses", "", "50", "-3", "10", "à recompter"},
	})

	table, err := excel.ReadVerificationTable(r)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	first := table.Rows[0]
	assert.Equal(t, "Gants L", first["Produit"])
	assert.Equal(t, "Conforme", first["Statut"])
	assert.Equal(t, "100", first["Qté théorique"])
	// colonne absente du fichier : créée vide
	assert.Equal(t, "", first["Qté réelle"])
	// colonne étrangère ignorée
	_, ok := first["Observations"]
	assert.False(t, ok)

	// chaque ligne porte toutes les colonnes standard
	for _, row := range table.Rows {
		for _, col := range entity.VerificationColumns {
			_, ok := row[col]
			assert.True(t, ok, "colonne %q manquante", col)
		}
	}
}

func TestReadVerificationTable_ClasseurVide(t *testing.T) {
	table, err := excel.ReadVerificationTable(buildWorkbook(t, nil))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}
