package stock

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hospstock/hospstock-api/internal/domain"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
)

// Colonnes obligatoires du fichier d'initialisation (clés normalisées).
var requiredColumns = []string{"Entite", "Produit", "Lot", "Date_peremption", "Stock_initial"}

// ImportTable tableau brut issu du fichier importé : en-têtes tels quels et
// lignes indexées par en-tête brut.
type ImportTable struct {
	Headers []string
	Rows    []map[string]string
}

// ImportSummary bilan d'un import best-effort.
type ImportSummary struct {
	Imported int
	Skipped  int
}

// ImportUseCase traduit le fichier tabulaire d'initialisation en une suite
// d'upserts de produits. Les lignes d'entités inconnues sont ignorées en
// silence (les classeurs multi-sites contiennent des lignes d'autres
// déploiements), de même que les lignes dont une cellule numérique est
// illisible : l'import continue.
type ImportUseCase struct {
	productRepo repository.ProductRepository
	entites     []string
}

// NewImportUseCase construit le cas d'usage avec les entités configurées.
func NewImportUseCase(productRepo repository.ProductRepository, entites []string) *ImportUseCase {
	return &ImportUseCase{productRepo: productRepo, entites: entites}
}

// ImportBatch valide d'abord la structure : toutes les colonnes obligatoires
// doivent être présentes, sinon SchemaError les nommant et aucune ligne n'est
// traitée. Ensuite chaque ligne valide déclenche un upsert indépendant.
func (uc *ImportUseCase) ImportBatch(table *ImportTable) (*ImportSummary, error) {
	cols := map[string]string{} // clé normalisée -> en-tête brut
	for _, h := range table.Headers {
		cols[normalizeHeader(h)] = h
	}

	var missing []string
	for _, required := range requiredColumns {
		if _, ok := cols[normalizeHeader(required)]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}

	cell := func(row map[string]string, col string) string {
		return strings.TrimSpace(row[cols[normalizeHeader(col)]])
	}

	summary := &ImportSummary{}
	for _, row := range table.Rows {
		entite := cell(row, "Entite")
		if !uc.isKnownEntite(entite) {
			summary.Skipped++
			continue
		}
		produit := cell(row, "Produit")
		lot := cell(row, "Lot")
		datePeremption := cell(row, "Date_peremption")

		stockInitial := decimal.Zero
		if raw := cell(row, "Stock_initial"); raw != "" {
			parsed, err := decimal.NewFromString(raw)
			if err != nil {
				// cellule numérique illisible : ligne ignorée, l'import continue
				summary.Skipped++
				continue
			}
			stockInitial = parsed
		}

		if _, err := uc.productRepo.Upsert(entite, produit, lot, datePeremption, stockInitial); err != nil {
			summary.Skipped++
			continue
		}
		summary.Imported++
	}
	return summary, nil
}

func (uc *ImportUseCase) isKnownEntite(entite string) bool {
	for _, e := range uc.entites {
		if e == entite {
			return true
		}
	}
	return false
}

// headerNormalizer retire les diacritiques pour comparer les en-têtes :
// "Entité" et "Entite" désignent la même colonne.
var headerNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeHeader(s string) string {
	out, _, err := transform.String(headerNormalizer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
