package stock_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hospstock/hospstock-api/internal/application/stock"
	"github.com/hospstock/hospstock-api/internal/domain"
	"github.com/hospstock/hospstock-api/internal/domain/entity"
	"github.com/hospstock/hospstock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en mémoire : ils implémentent les contrats documentés des ports
// (règle d'upsert, delta conditionnel, jointure du journal).
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID      map[string]*entity.Product
	byKey     map[string]*entity.Product
	upsertErr error // force l'échec du prochain upsert
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID:  map[string]*entity.Product{},
		byKey: map[string]*entity.Product{},
	}
}

func productKey(entite, produit, lot string) string {
	return fmt.Sprintf("%s|%s|%s", entite, produit, lot)
}

func (r *fakeProductRepo) Upsert(entite, produit, lot, datePeremption string, stockInitial decimal.Decimal) (string, error) {
	if r.upsertErr != nil {
		err := r.upsertErr
		r.upsertErr = nil
		return "", err
	}
	key := productKey(entite, produit, lot)
	if existing, ok := r.byKey[key]; ok {
		existing.DatePeremption = datePeremption
		existing.StockInitial = stockInitial
		if existing.StockActuel == nil || existing.StockActuel.IsZero() {
			v := stockInitial
			existing.StockActuel = &v
		}
		return existing.ID, nil
	}
	v := stockInitial
	p := &entity.Product{
		ID:             uuid.New().String(),
		Entite:         entite,
		Produit:        produit,
		Lot:            lot,
		DatePeremption: datePeremption,
		StockInitial:   stockInitial,
		StockActuel:    &v,
	}
	r.byID[p.ID] = p
	r.byKey[key] = p
	return p.ID, nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) ListByEntite(entite string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.byID {
		if p.Entite == entite {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Produit < list[j].Produit })
	return list, nil
}

func (r *fakeProductRepo) ApplyStockDelta(id string, delta decimal.Decimal) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	current := decimal.Zero
	if p.StockActuel != nil {
		current = *p.StockActuel
	}
	v := current.Add(delta)
	p.StockActuel = &v
	return nil
}

type fakeMovementRepo struct {
	products  *fakeProductRepo
	movements []*entity.Movement
}

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func newFakeMovementRepo(products *fakeProductRepo) *fakeMovementRepo {
	return &fakeMovementRepo{products: products}
}

func (r *fakeMovementRepo) Create(movement *entity.Movement) error {
	r.movements = append(r.movements, movement)
	return nil
}

func (r *fakeMovementRepo) ListByEntite(entite string) ([]*entity.MovementWithProduct, error) {
	var list []*entity.MovementWithProduct
	for _, m := range r.movements {
		p := r.products.byID[m.ProduitID]
		if p == nil || p.Entite != entite {
			continue
		}
		list = append(list, &entity.MovementWithProduct{
			Movement: *m,
			Entite:   p.Entite,
			Produit:  p.Produit,
			Lot:      p.Lot,
		})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].TS.After(list[j].TS) })
	return list, nil
}

// fakeTxRunner exécute le callback directement avec les fakes ; pas de
// transaction réelle, l'ordre des écritures suffit pour les assertions.
type fakeTxRunner struct {
	movements *fakeMovementRepo
	products  *fakeProductRepo
}

var _ stock.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.movements, r.products)
}
