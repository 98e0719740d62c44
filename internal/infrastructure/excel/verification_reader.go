package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hospstock/hospstock-api/internal/domain/entity"
)

// ReadVerificationTable lit la première feuille du fichier annoté et la
// projette sur les colonnes standard du tableau de vérification. Les colonnes
// absentes sont créées vides ; les colonnes supplémentaires sont ignorées.
func ReadVerificationTable(r io.Reader) (*entity.VerificationTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ouvrir le fichier annoté: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("lire la feuille %q: %w", sheet, err)
	}
	table := &entity.VerificationTable{}
	if len(rows) == 0 {
		return table, nil
	}

	// position de chaque colonne standard dans le fichier, -1 si absente
	position := map[string]int{}
	for _, col := range entity.VerificationColumns {
		position[col] = -1
	}
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if _, ok := position[h]; ok {
			position[h] = i
		}
	}

	for _, raw := range rows[1:] {
		row := entity.VerificationRow{}
		for _, col := range entity.VerificationColumns {
			idx := position[col]
			if idx >= 0 && idx < len(raw) {
				row[col] = raw[idx]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
