package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schéma du grand livre : produits (clé unique entite/produit/lot, solde
// nullable pour la règle de ré-import), mouvements (append seul, type
// contraint) et utilisateurs (auth API).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS produits (
		id UUID PRIMARY KEY,
		entite TEXT NOT NULL,
		produit TEXT NOT NULL,
		lot TEXT NOT NULL DEFAULT '',
		date_peremption TEXT NOT NULL DEFAULT '',
		stock_initial NUMERIC NOT NULL DEFAULT 0,
		stock_actuel NUMERIC,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (entite, produit, lot)
	)`,
	`CREATE TABLE IF NOT EXISTS mouvements (
		id UUID PRIMARY KEY,
		produit_id UUID NOT NULL REFERENCES produits(id),
		type TEXT NOT NULL CHECK (type IN ('Entree','Sortie','Endommage')),
		quantite NUMERIC NOT NULL,
		service TEXT NOT NULL DEFAULT '',
		ts TIMESTAMPTZ NOT NULL,
		commentaire TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mouvements_produit ON mouvements(produit_id)`,
	`CREATE INDEX IF NOT EXISTS idx_produits_entite ON produits(entite)`,
	`CREATE TABLE IF NOT EXISTS utilisateurs (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate applique le schéma (idempotent, CREATE IF NOT EXISTS).
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration: %w", err)
		}
	}
	return nil
}
