package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hospstock/hospstock-api/internal/application/stock"
	"github.com/hospstock/hospstock-api/internal/domain/entity"
)

var _ stock.RecapExporter = (*WorkbookWriter)(nil)

// Noms des feuilles du classeur récapitulatif.
const (
	SheetRecap      = "Récapitulatif"
	SheetMouvements = "Mouvements"
	SheetProduits   = "Produits"
)

// WorkbookWriter implémente stock.RecapExporter avec excelize : un classeur à
// trois feuilles (récapitulatif, journal des mouvements, produits bruts).
type WorkbookWriter struct{}

// NewWorkbookWriter construit le writer.
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{}
}

// Export écrit le classeur dans le fichier indiqué. Ouverture, écriture,
// fermeture garantie ; une erreur d'écriture remonte telle quelle.
func (w *WorkbookWriter) Export(path string, recap []entity.RecapRow, movements []*entity.MovementWithProduct, products []*entity.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetRecap); err != nil {
		return fmt.Errorf("renommer la feuille: %w", err)
	}
	if _, err := f.NewSheet(SheetMouvements); err != nil {
		return fmt.Errorf("créer la feuille %s: %w", SheetMouvements, err)
	}
	if _, err := f.NewSheet(SheetProduits); err != nil {
		return fmt.Errorf("créer la feuille %s: %w", SheetProduits, err)
	}

	if err := writeRecapSheet(f, recap); err != nil {
		return err
	}
	if err := writeMouvementsSheet(f, movements); err != nil {
		return err
	}
	if err := writeProduitsSheet(f, products); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("écrire le classeur %s: %w", path, err)
	}
	return nil
}

func writeRecapSheet(f *excelize.File, recap []entity.RecapRow) error {
	headers := []any{
		"Produit", "Lot", "Date péremption", "Stock initial",
		"Total entrées", "Total sorties", "Total endommagé", "Stock actuel",
	}
	if err := writeRow(f, SheetRecap, 1, headers); err != nil {
		return err
	}
	for i, r := range recap {
		var stockActuel any
		if r.StockActuel != nil {
			stockActuel = r.StockActuel.InexactFloat64()
		}
		row := []any{
			r.Produit, r.Lot, r.DatePeremption, r.StockInitial.InexactFloat64(),
			r.TotalEntrees.InexactFloat64(), r.TotalSorties.InexactFloat64(),
			r.TotalEndommage.InexactFloat64(), stockActuel,
		}
		if err := writeRow(f, SheetRecap, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeMouvementsSheet(f *excelize.File, movements []*entity.MovementWithProduct) error {
	headers := []any{"id", "produit_id", "type", "quantite", "service", "ts", "commentaire", "entite", "produit", "lot"}
	if err := writeRow(f, SheetMouvements, 1, headers); err != nil {
		return err
	}
	for i, m := range movements {
		row := []any{
			m.ID, m.ProduitID, m.Type, m.Quantite.InexactFloat64(),
			m.Service, m.TS.Format("2006-01-02 15:04:05"), m.Commentaire,
			m.Entite, m.Produit, m.Lot,
		}
		if err := writeRow(f, SheetMouvements, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeProduitsSheet(f *excelize.File, products []*entity.Product) error {
	headers := []any{"id", "entite", "produit", "lot", "date_peremption", "stock_initial", "stock_actuel"}
	if err := writeRow(f, SheetProduits, 1, headers); err != nil {
		return err
	}
	for i, p := range products {
		var stockActuel any
		if p.StockActuel != nil {
			stockActuel = p.StockActuel.InexactFloat64()
		}
		row := []any{
			p.ID, p.Entite, p.Produit, p.Lot, p.DatePeremption,
			p.StockInitial.InexactFloat64(), stockActuel,
		}
		if err := writeRow(f, SheetProduits, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// writeRow écrit les valeurs d'une ligne à partir de la colonne A.
func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("coordonnées de cellule: %w", err)
		}
		if v == nil {
			continue
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("écrire %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
