package orders_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
)

// ─────────────────────────── fakes de repositório ───────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	seq    int
	count  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	f.count++
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) ListByEmpresa(empresaID, status string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.EmpresaID == empresaID && (status == "" || o.Status == status) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return fmt.Errorf("pedido %s não existe", id)
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) NextCode(empresaID string) (string, error) {
	f.seq++
	return fmt.Sprintf("PED-%06d", f.seq), nil
}

func (f *fakeOrderRepo) CountByEmpresa(empresaID string) (int, error) {
	return f.count, nil
}

type fakeQuoteRepo struct {
	quotes map[string]*entity.Quote
	seq    int
}

func newFakeQuoteRepo() *fakeQuoteRepo {
	return &fakeQuoteRepo{quotes: make(map[string]*entity.Quote)}
}

func (f *fakeQuoteRepo) Create(q *entity.Quote) error {
	cp := *q
	f.quotes[q.ID] = &cp
	return nil
}

func (f *fakeQuoteRepo) GetByID(id string) (*entity.Quote, error) {
	q, ok := f.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuoteRepo) ListByEmpresa(empresaID, status string, limit, offset int) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range f.quotes {
		if q.EmpresaID == empresaID && (status == "" || q.Status == status) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) UpdateStatus(id, status string) error {
	q, ok := f.quotes[id]
	if !ok {
		return fmt.Errorf("orçamento %s não existe", id)
	}
	q.Status = status
	return nil
}

func (f *fakeQuoteRepo) MarkConverted(id, orderID string) error {
	q, ok := f.quotes[id]
	if !ok {
		return fmt.Errorf("orçamento %s não existe", id)
	}
	q.Status = entity.QuoteStatusConvertido
	q.OrderID = orderID
	return nil
}

func (f *fakeQuoteRepo) NextCode(empresaID string) (string, error) {
	f.seq++
	return fmt.Sprintf("ORC-%06d", f.seq), nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo(cs ...*entity.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	for _, c := range cs {
		f.customers[c.ID] = c
	}
	return f
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) ListByEmpresa(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) SearchByEmpresa(string, string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Update(c *entity.Customer) error {
	return nil
}

func (f *fakeCustomerRepo) Delete(id string) error {
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(ps ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range ps {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) ListByEmpresa(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	return nil
}

type fakeServiceRepo struct {
	services map[string]*entity.QuickService
}

func newFakeServiceRepo(ss ...*entity.QuickService) *fakeServiceRepo {
	f := &fakeServiceRepo{services: make(map[string]*entity.QuickService)}
	for _, s := range ss {
		f.services[s.ID] = s
	}
	return f
}

func (f *fakeServiceRepo) Create(s *entity.QuickService) error {
	f.services[s.ID] = s
	return nil
}

func (f *fakeServiceRepo) GetByID(id string) (*entity.QuickService, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) ListByEmpresa(string, int, int) ([]*entity.QuickService, error) {
	return nil, nil
}

func (f *fakeServiceRepo) Update(s *entity.QuickService) error {
	return nil
}

func (f *fakeServiceRepo) Delete(id string) error {
	return nil
}

type fakeReceivableRepo struct {
	created []*entity.Receivable
}

func (f *fakeReceivableRepo) Create(r *entity.Receivable) error {
	f.created = append(f.created, r)
	return nil
}

func (f *fakeReceivableRepo) GetByID(string) (*entity.Receivable, error) {
	return nil, nil
}

func (f *fakeReceivableRepo) ListByEmpresa(string, string, int, int) ([]*entity.Receivable, error) {
	return nil, nil
}

func (f *fakeReceivableRepo) MarkPaid(string, time.Time) error {
	return nil
}

func (f *fakeReceivableRepo) OpenTotal(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeSubRepo struct {
	current *entity.Subscription
}

func (f *fakeSubRepo) Create(s *entity.Subscription) error {
	return nil
}

func (f *fakeSubRepo) GetByID(string) (*entity.Subscription, error) {
	return nil, nil
}

func (f *fakeSubRepo) GetCurrentByEmpresa(string) (*entity.Subscription, error) {
	return f.current, nil
}

func (f *fakeSubRepo) Update(s *entity.Subscription) error {
	return nil
}

// fakeDeducer registra cada disparo de dedução.
type fakeDeducer struct {
	inputs []inventory.DeductionInput
}

func (f *fakeDeducer) Deduct(_ context.Context, in inventory.DeductionInput) inventory.DeductionSummary {
	f.inputs = append(f.inputs, in)
	return inventory.DeductionSummary{
		SourceKind: in.SourceKind,
		SourceID:   in.SourceID,
		SourceName: in.SourceName,
		Strategy:   inventory.StrategySimilarity,
		Succeeded:  1,
	}
}
