package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospstock/hospstock-api/internal/application/dto"
	"github.com/hospstock/hospstock-api/internal/domain"
	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
)

// RegisterMovementUseCase valide et enregistre un mouvement de stock de façon
// transactionnelle : la ligne de mouvement et la mise à jour du solde passent
// ou échouent ensemble.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construit le cas d'usage.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// RegisterMovement vérifie la quantité (strictement positive) et le type
// (Entree, Sortie, Endommage), puis dans une même transaction applique le
// delta signé au solde et ajoute la ligne de journal. Toute erreur du store
// remonte inchangée. Un solde négatif résultant est permis.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) error {
	if !in.Quantite.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	sign := entity.MovementSign(in.Type)
	if sign == 0 {
		return domain.ErrInvalidInput
	}

	now := time.Now().Truncate(time.Second)

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		delta := in.Quantite
		if sign < 0 {
			delta = delta.Neg()
		}
		// La mise à jour conditionnelle verrouille la ligne produit et
		// détecte un produit inexistant (ErrNotFound) avant toute écriture
		// de mouvement.
		if err := productRepo.ApplyStockDelta(in.ProduitID, delta); err != nil {
			return err
		}
		mov := &entity.Movement{
			ID:          uuid.New().String(),
			ProduitID:   in.ProduitID,
			Type:        in.Type,
			Quantite:    in.Quantite,
			Service:     in.Service,
			TS:          now,
			Commentaire: in.Commentaire,
		}
		return movRepo.Create(mov)
	})
}
