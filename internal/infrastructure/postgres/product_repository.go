package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hospstock/hospstock-api/internal/domain"
	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implémentation du port ProductRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Upsert insère ou met à jour le produit porteur de la clé (entite, produit,
// lot). À la mise à jour, stock_actuel n'est remplacé par le nouveau
// stock_initial que s'il est NULL ou égal à zéro — règle héritée du
// ré-import, conservée telle quelle.
func (r *ProductRepo) Upsert(entite, produit, lot, datePeremption string, stockInitial decimal.Decimal) (string, error) {
	query := `
		INSERT INTO produits (id, entite, produit, lot, date_peremption, stock_initial, stock_actuel, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, now(), now())
		ON CONFLICT (entite, produit, lot) DO UPDATE SET
			date_peremption = EXCLUDED.date_peremption,
			stock_initial   = EXCLUDED.stock_initial,
			stock_actuel    = CASE
				WHEN produits.stock_actuel IS NULL OR produits.stock_actuel = 0
				THEN EXCLUDED.stock_initial
				ELSE produits.stock_actuel
			END,
			updated_at      = now()
		RETURNING id`
	var id string
	err := r.q.QueryRow(context.Background(), query,
		uuid.New().String(), entite, produit, lot, datePeremption, stockInitial,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upsert produit: %w", err)
	}
	return id, nil
}

// GetByID retourne un produit par ID, nil si absent.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, entite, produit, lot, date_peremption, stock_initial, stock_actuel, created_at, updated_at
		FROM produits WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Entite, &p.Produit, &p.Lot, &p.DatePeremption,
		&p.StockInitial, &p.StockActuel, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produit: %w", err)
	}
	return &p, nil
}

// ListByEntite liste les produits d'une entité, triés par nom croissant.
func (r *ProductRepo) ListByEntite(entite string) ([]*entity.Product, error) {
	query := `
		SELECT id, entite, produit, lot, date_peremption, stock_initial, stock_actuel, created_at, updated_at
		FROM produits WHERE entite = $1 ORDER BY produit ASC`
	rows, err := r.q.Query(context.Background(), query, entite)
	if err != nil {
		return nil, fmt.Errorf("list produits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Entite, &p.Produit, &p.Lot, &p.DatePeremption,
			&p.StockInitial, &p.StockActuel, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produit: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ApplyStockDelta applique le delta signé au solde en une seule instruction
// conditionnelle : la ligne est verrouillée par l'UPDATE, les écritures
// concurrentes sur le même produit se sérialisent. ErrNotFound si l'ID ne
// référence aucun produit.
func (r *ProductRepo) ApplyStockDelta(id string, delta decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE produits SET stock_actuel = COALESCE(stock_actuel, 0) + $2, updated_at = now() WHERE id = $1`,
		id, delta,
	)
	if err != nil {
		return fmt.Errorf("update stock_actuel: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
