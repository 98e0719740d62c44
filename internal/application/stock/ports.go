package stock

import (
	"context"
	"time"

	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction DB, en passant des
// repositories liés à cette transaction. Garantit l'atomicité entre l'ajout
// du mouvement et la mise à jour du solde.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// RecapExporter rend le classeur récapitulatif (Récapitulatif, Mouvements,
// Produits) dans le fichier indiqué. Terminal : ne modifie jamais le stock.
type RecapExporter interface {
	Export(path string, recap []entity.RecapRow, movements []*entity.MovementWithProduct, products []*entity.Product) error
}

// VerificationRenderer rend le rapport PDF de vérification à partir du
// tableau annoté. Indépendant du grand livre : l'entrée vient d'un fichier
// édité à la main, jamais du store.
type VerificationRenderer interface {
	Render(path string, table *entity.VerificationTable, entite string, generatedAt time.Time) error
}
