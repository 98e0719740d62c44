// Package excel regroupe les adaptateurs xlsx : lecture du fichier
// d'initialisation, lecture du tableau de vérification annoté et écriture du
// classeur récapitulatif. Tout passe par excelize, en mémoire ou sur disque.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hospstock/hospstock-api/internal/application/stock"
)

// ReadImportTable lit la première feuille du classeur et la retourne sous
// forme de tableau brut (première ligne = en-têtes). Les lignes plus courtes
// que la ligne d'en-têtes sont complétées par des cellules vides.
func ReadImportTable(r io.Reader) (*stock.ImportTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ouvrir le classeur: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("lire la feuille %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &stock.ImportTable{}, nil
	}

	headers := rows[0]
	table := &stock.ImportTable{Headers: headers}
	for _, raw := range rows[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(raw) {
				row[h] = raw[i]
			} else {
				row[h] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
