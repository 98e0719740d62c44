// Package pdf implémente le rendu du rapport de vérification du stock.
//
// Mise en page A4 :
//
//	┌───────────────────────────────────────────────────────────┐
//	│  EN-TÊTE : Rapport de vérification du stock               │
//	│            <entité> — <mois année>                        │
//	│  ───────────────────────────────────────────────────────  │
//	│  TABLE : Produit | Qté théo. | Qté réelle | Écart |        │
//	│          Sorties | Statut | Commentaire                   │
//	│  ───────────────────────────────────────────────────────  │
//	│  RÉSUMÉ : Conformes / Manquants / Endommagés              │
//	│  Observations + Signature du responsable                  │
//	└───────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/hospstock/hospstock-api/internal/application/stock"
	"github.com/hospstock/hospstock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// largeur (en colonnes maroto sur 12) de chaque colonne du tableau
var columnSpans = []int{3, 1, 1, 1, 1, 2, 3}

var _ stock.VerificationRenderer = (*MarotoVerificationGenerator)(nil)

// MarotoVerificationGenerator implémente stock.VerificationRenderer avec Maroto v2.
type MarotoVerificationGenerator struct{}

// NewMarotoVerificationGenerator construit le générateur.
func NewMarotoVerificationGenerator() *MarotoVerificationGenerator {
	return &MarotoVerificationGenerator{}
}

// Render génère le PDF et l'écrit dans le fichier indiqué.
func (g *MarotoVerificationGenerator) Render(path string, table *entity.VerificationTable, entite string, generatedAt time.Time) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport de vérification du stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(entite, generatedAt)...)
	m.AddRows(line.NewRow(2))

	m.AddRows(tableHeaderRow())
	for _, r := range table.Rows {
		m.AddRows(tableDetailRow(r))
	}

	summary := table.Summarize()
	m.AddRows(line.NewRow(4))
	m.AddRows(summaryRows(summary)...)
	m.AddRows(signatureRows()...)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: générer le document: %w", err)
	}
	if err := os.WriteFile(path, doc.GetBytes(), 0o644); err != nil {
		return fmt.Errorf("pdf: écrire %s: %w", path, err)
	}
	return nil
}

// ── sections ──────────────────────────────────────────────────────────────────

// headerRows : titre centré puis entité et période.
func headerRows(entite string, generatedAt time.Time) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("Rapport de vérification du stock", props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s — %s", entite, moisAnnee(generatedAt)), props.Text{
				Size: 12, Align: align.Center, Top: 1,
			}),
		)),
	}
}

// tableHeaderRow : en-tête du tableau à colonnes fixes.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(entity.VerificationColumns))
	for i, label := range entity.VerificationColumns {
		cols = append(cols, col.New(columnSpans[i]).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		))
	}
	return row.New(8).Add(cols...)
}

// tableDetailRow : une ligne du tableau, valeurs tronquées à 30 caractères.
func tableDetailRow(r entity.VerificationRow) core.Row {
	cols := make([]core.Col, 0, len(entity.VerificationColumns))
	for i, label := range entity.VerificationColumns {
		cols = append(cols, col.New(columnSpans[i]).Add(
			text.New(truncate(r[label], 30), props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			}),
		))
	}
	return row.New(7).Add(cols...)
}

// summaryRows : décompte des lignes par statut.
func summaryRows(s entity.VerificationSummary) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Résumé :", props.Text{Style: fontstyle.Bold, Size: 11, Top: 1}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Conformes : %d    Manquants : %d    Endommagés : %d",
				s.Conformes, s.Manquants, s.Endommages), props.Text{Size: 10, Top: 1}),
		)),
	}
}

// signatureRows : observations en pointillés puis ligne de signature.
func signatureRows() []core.Row {
	dots := strings.Repeat(".", 118)
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Observations :", props.Text{Size: 10, Top: 2}),
		)),
	}
	for i := 0; i < 2; i++ {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(dots, props.Text{Size: 9, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(12).Add(col.New(12).Add(
		text.New("Signature du responsable : ____________________________", props.Text{
			Size: 10, Top: 6,
		}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

var moisFrancais = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// moisAnnee formate la période du rapport en français, ex. "septembre 2026".
func moisAnnee(t time.Time) string {
	return fmt.Sprintf("%s %d", moisFrancais[t.Month()-1], t.Year())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
