package stock

import (
	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
)

// QueryUseCase lectures simples du grand livre pour la couche de présentation.
type QueryUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

// NewQueryUseCase construit le cas d'usage.
func NewQueryUseCase(productRepo repository.ProductRepository, movementRepo repository.MovementRepository) *QueryUseCase {
	return &QueryUseCase{productRepo: productRepo, movementRepo: movementRepo}
}

// ListProduits retourne les produits de l'entité, triés par nom.
func (uc *QueryUseCase) ListProduits(entite string) ([]*entity.Product, error) {
	return uc.productRepo.ListByEntite(entite)
}

// ListMouvements retourne le journal des mouvements de l'entité, joint aux
// produits, du plus récent au plus ancien.
func (uc *QueryUseCase) ListMouvements(entite string) ([]*entity.MovementWithProduct, error) {
	return uc.movementRepo.ListByEntite(entite)
}
