package inventory_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória para o motor de inventário
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items   map[string]*entity.InventoryItem
	order   []string // ordem de listagem determinística
	listErr error
}

func newFakeItemRepo(items ...*entity.InventoryItem) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.InventoryItem)}
	for _, it := range items {
		r.items[it.ID] = it
		r.order = append(r.order, it.ID)
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.InventoryItem, error) {
	return r.items[id], nil
}

func (r *fakeItemRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.InventoryItem, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var all []*entity.InventoryItem
	for _, id := range r.order {
		if it := r.items[id]; it.EmpresaID == empresaID {
			all = append(all, it)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeItemRepo) ListBelowMinimum(empresaID string) ([]*entity.InventoryItem, error) {
	return nil, nil
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(item *entity.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeMovRepo struct {
	movements []*entity.StockMovement
	createErr error
}

func (r *fakeMovRepo) Create(mov *entity.StockMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.movements = append(r.movements, mov)
	return nil
}

func (r *fakeMovRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) ListByOrigin(originKind, originID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.OriginKind == originKind && m.OriginID == originID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner executa o callback diretamente sobre os fakes (sem transação real).
type fakeTxRunner struct {
	itemRepo *fakeItemRepo
	movRepo  *fakeMovRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(t.itemRepo, t.movRepo)
}

// fakeRecorder captura as baixas pedidas pelo resolvedor.
type recordedCall struct {
	ItemID   string
	Quantity decimal.Decimal
	Origin   string
	OriginID string
}

type fakeRecorder struct {
	calls   []recordedCall
	failFor map[string]bool // ItemID -> falhar
}

func (f *fakeRecorder) RecordDeduction(_ context.Context, _, _, itemID string,
	quantity decimal.Decimal, _, originKind, originID string,
) (decimal.Decimal, decimal.Decimal, error) {
	f.calls = append(f.calls, recordedCall{ItemID: itemID, Quantity: quantity, Origin: originKind, OriginID: originID})
	if f.failFor[itemID] {
		return decimal.Zero, decimal.Zero, errors.New("baixa recusada")
	}
	return decimal.NewFromInt(10), decimal.NewFromInt(10).Sub(quantity), nil
}

var _ inventory.DeductionRecorder = (*fakeRecorder)(nil)

func item(id, empresaID, name string, qty int64) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:              id,
		EmpresaID:       empresaID,
		Name:            name,
		Unit:            "un",
		CurrentQuantity: decimal.NewFromInt(qty),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}
