package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Types de mouvement de stock. Les libellés sont ceux persistés en base
// (contrainte CHECK sur mouvements.type).
const (
	MovementTypeEntree    = "Entree"
	MovementTypeSortie    = "Sortie"
	MovementTypeEndommage = "Endommage"
)

// MovementSign retourne le signe appliqué au solde pour un type de mouvement :
// Entree -> +1, Sortie et Endommage -> -1. Retourne 0 pour un type inconnu.
func MovementSign(typ string) int {
	switch typ {
	case MovementTypeEntree:
		return 1
	case MovementTypeSortie, MovementTypeEndommage:
		return -1
	}
	return 0
}

// Movement représente un mouvement de stock enregistré contre un produit.
// Journal en append seul : jamais modifié ni supprimé après création.
type Movement struct {
	ID          string
	ProduitID   string
	Type        string // Entree, Sortie, Endommage
	Quantite    decimal.Decimal
	Service     string // service/destination, renseigné surtout pour les sorties
	TS          time.Time
	Commentaire string
}

// MovementWithProduct mouvement joint aux champs d'identité du produit,
// pour le journal par entité et l'onglet Mouvements du rapport.
type MovementWithProduct struct {
	Movement
	Entite  string
	Produit string
	Lot     string
}
