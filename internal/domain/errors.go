package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound         = errors.New("ressource introuvable")
	ErrInvalidInput     = errors.New("entrée invalide")
	ErrDuplicate        = errors.New("ressource dupliquée")
	ErrUnauthorized     = errors.New("non autorisé")
	ErrForbidden        = errors.New("accès refusé")
	ErrEmailDejaUtilise = errors.New("l'email est déjà enregistré")
)

// SchemaError signale des colonnes obligatoires absentes du fichier importé.
// L'import est abandonné en bloc : aucune ligne n'est traitée.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("colonnes manquantes dans le fichier: %s", strings.Join(e.Missing, ", "))
}
