// migrate applique le schéma de la base (idempotent) puis termine.
//
// Usage : go run ./cmd/migrate
// La connexion est lue depuis la même configuration que l'API (DATABASE_URL
// ou DB_HOST/DB_PORT/...).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hospstock/hospstock-api/internal/infrastructure/postgres"
	"github.com/hospstock/hospstock-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "charger la configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connexion PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migration: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("schéma à jour")
}
