package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implémentation sur PostgreSQL (utilisable avec pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create ajoute une ligne de mouvement. Le journal est en append seul.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO mouvements (id, produit_id, type, quantite, service, ts, commentaire)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProduitID, movement.Type, movement.Quantite,
		movement.Service, movement.TS, movement.Commentaire,
	)
	if err != nil {
		return fmt.Errorf("insert mouvement: %w", err)
	}
	return nil
}

// ListByEntite liste les mouvements des produits d'une entité, joints aux
// champs d'identité du produit, du plus récent au plus ancien.
func (r *MovementRepo) ListByEntite(entite string) ([]*entity.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.produit_id, m.type, m.quantite, m.service, m.ts, m.commentaire,
		       p.entite, p.produit, p.lot
		FROM mouvements m
		JOIN produits p ON p.id = m.produit_id
		WHERE p.entite = $1
		ORDER BY m.ts DESC`
	rows, err := r.q.Query(context.Background(), query, entite)
	if err != nil {
		return nil, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		if err := rows.Scan(&m.ID, &m.ProduitID, &m.Type, &m.Quantite, &m.Service,
			&m.TS, &m.Commentaire, &m.Entite, &m.Produit, &m.Lot); err != nil {
			return nil, fmt.Errorf("scan mouvement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
