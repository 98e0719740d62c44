package entity

import "strings"

// Colonnes attendues du tableau de vérification annoté. Les colonnes absentes
// du fichier fourni sont créées vides avant rendu.
var VerificationColumns = []string{
	"Produit", "Qté théorique", "Qté réelle", "Écart", "Sorties", "Statut", "Commentaire",
}

// VerificationRow ligne du tableau de vérification, clé = nom de colonne.
type VerificationRow map[string]string

// VerificationTable tableau annoté à la main (hors grand livre) servant
// d'entrée au rapport PDF de conformité. Il ne lit ni n'écrit jamais le stock.
type VerificationTable struct {
	Rows []VerificationRow
}

// VerificationSummary décompte des lignes par classement du statut.
type VerificationSummary struct {
	Conformes  int
	Manquants  int
	Endommages int
}

// Summarize classe chaque ligne selon son statut libre, en minuscules :
// contient "conforme" -> conforme, "manquant" -> manquant, "endom" -> endommagé.
// Une ligne sans statut reconnu n'est comptée nulle part.
func (t *VerificationTable) Summarize() VerificationSummary {
	var s VerificationSummary
	for _, row := range t.Rows {
		statut := strings.ToLower(row["Statut"])
		switch {
		case strings.Contains(statut, "conforme"):
			s.Conformes++
		case strings.Contains(statut, "manquant"):
			s.Manquants++
		case strings.Contains(statut, "endom"):
			s.Endommages++
		}
	}
	return s
}
