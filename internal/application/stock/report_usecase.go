package stock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
)

// ReportUseCase produit la vue de réconciliation par entité et la rend dans
// un artefact exportable (classeur Excel ou PDF de vérification).
type ReportUseCase struct {
	productRepo   repository.ProductRepository
	movementRepo  repository.MovementRepository
	exporter      RecapExporter
	verifRenderer VerificationRenderer
	exportDir     string
	rapportDir    string
}

// NewReportUseCase construit le cas d'usage avec les renderers et les
// répertoires de sortie.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	exporter RecapExporter,
	verifRenderer VerificationRenderer,
	exportDir, rapportDir string,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:   productRepo,
		movementRepo:  movementRepo,
		exporter:      exporter,
		verifRenderer: verifRenderer,
		exportDir:     exportDir,
		rapportDir:    rapportDir,
	}
}

// BuildRecap retourne exactement une ligne par produit de l'entité. Les
// totaux sont recalculés depuis le journal brut des mouvements — jamais
// depuis le solde stocké — ce qui sert de contrôle croisé de cohérence.
// Un produit sans mouvement a tous ses totaux à zéro.
func (uc *ReportUseCase) BuildRecap(entite string) ([]entity.RecapRow, error) {
	products, err := uc.productRepo.ListByEntite(entite)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListByEntite(entite)
	if err != nil {
		return nil, err
	}

	type totals struct {
		entrees, sorties, endommage decimal.Decimal
	}
	perProduct := map[string]*totals{}
	for _, m := range movements {
		t := perProduct[m.ProduitID]
		if t == nil {
			t = &totals{}
			perProduct[m.ProduitID] = t
		}
		switch m.Type {
		case entity.MovementTypeEntree:
			t.entrees = t.entrees.Add(m.Quantite)
		case entity.MovementTypeSortie:
			t.sorties = t.sorties.Add(m.Quantite)
		case entity.MovementTypeEndommage:
			t.endommage = t.endommage.Add(m.Quantite)
		}
	}

	rows := make([]entity.RecapRow, 0, len(products))
	for _, p := range products {
		t := perProduct[p.ID]
		if t == nil {
			t = &totals{}
		}
		rows = append(rows, entity.RecapRow{
			Produit:        p.Produit,
			Lot:            p.Lot,
			DatePeremption: p.DatePeremption,
			StockInitial:   p.StockInitial,
			TotalEntrees:   t.entrees,
			TotalSorties:   t.sorties,
			TotalEndommage: t.endommage,
			StockActuel:    p.StockActuel,
		})
	}
	return rows, nil
}

// ExportWorkbook génère le classeur Rapport_<entite>_<horodatage>.xlsx dans
// le répertoire d'export et retourne son chemin.
func (uc *ReportUseCase) ExportWorkbook(entite string) (string, error) {
	recap, err := uc.BuildRecap(entite)
	if err != nil {
		return "", err
	}
	movements, err := uc.movementRepo.ListByEntite(entite)
	if err != nil {
		return "", err
	}
	products, err := uc.productRepo.ListByEntite(entite)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(uc.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("créer le répertoire d'export: %w", err)
	}
	path := filepath.Join(uc.exportDir, RapportFileName(entite, time.Now(), "xlsx"))
	if err := uc.exporter.Export(path, recap, movements, products); err != nil {
		return "", err
	}
	return path, nil
}

// RenderVerification rend le rapport PDF de conformité à partir du tableau
// annoté fourni par l'utilisateur. Ne lit jamais le grand livre : l'annotation
// manuelle reste séparée de la vérité enregistrée.
func (uc *ReportUseCase) RenderVerification(table *entity.VerificationTable, entite string) (string, error) {
	if err := os.MkdirAll(uc.rapportDir, 0o755); err != nil {
		return "", fmt.Errorf("créer le répertoire des rapports: %w", err)
	}
	now := time.Now()
	path := filepath.Join(uc.rapportDir, RapportFileName(entite, now, "pdf"))
	if err := uc.verifRenderer.Render(path, table, entite, now); err != nil {
		return "", err
	}
	return path, nil
}

// RapportFileName construit le nom de fichier des rapports :
// Rapport_<entité, espaces remplacés par _>_<AAAAMMJJ_HHMM>.<ext>
func RapportFileName(entite string, ts time.Time, ext string) string {
	return fmt.Sprintf("Rapport_%s_%s.%s",
		strings.ReplaceAll(entite, " ", "_"),
		ts.Format("20060102_1504"),
		ext,
	)
}
