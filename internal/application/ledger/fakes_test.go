package ledger_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ledger-pro/internal/domain/entity"
	"github.com/jhoicas/ledger-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso del libro. memTxRunner imita la
// semántica todo-o-nada de la transacción real: toma un snapshot del estado y
// lo restaura si fn devuelve error, así los tests pueden afirmar que un fallo
// no deja escrituras parciales.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	companies []*entity.Company
	items     []*entity.Item
	purchases []*entity.Purchase
	sales     []*entity.Sale
}

func (s *memStore) snapshot() memStore {
	snap := memStore{}
	for _, c := range s.companies {
		cc := *c
		snap.companies = append(snap.companies, &cc)
	}
	for _, it := range s.items {
		ii := *it
		snap.items = append(snap.items, &ii)
	}
	for _, p := range s.purchases {
		pp := *p
		snap.purchases = append(snap.purchases, &pp)
	}
	for _, v := range s.sales {
		vv := *v
		snap.sales = append(snap.sales, &vv)
	}
	return snap
}

func (s *memStore) seedCompany(name string, balance decimal.Decimal) *entity.Company {
	c := &entity.Company{ID: "company-" + name, Name: name, CashBalance: balance}
	s.companies = append(s.companies, c)
	return c
}

func (s *memStore) companyByName(name string) *entity.Company {
	for _, c := range s.companies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *memStore) itemByName(name string) *entity.Item {
	for _, it := range s.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// ── repos ─────────────────────────────────────────────────────────────────────

type memCompanyRepo struct{ store *memStore }

var _ repository.CompanyRepository = (*memCompanyRepo)(nil)

func (r *memCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	c := *company
	r.store.companies = append(r.store.companies, &c)
	return nil
}

func (r *memCompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	if c := r.store.companyByName(name); c != nil {
		cc := *c
		return &cc, nil
	}
	return nil, nil
}

func (r *memCompanyRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Company, error) {
	return r.GetByName(ctx, name)
}

func (r *memCompanyRepo) UpdateBalance(_ context.Context, id string, balance decimal.Decimal) error {
	for _, c := range r.store.companies {
		if c.ID == id {
			c.CashBalance = balance
			return nil
		}
	}
	return errNotSeeded
}

func (r *memCompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	return r.store.companies, nil
}

type memItemRepo struct{ store *memStore }

var _ repository.ItemRepository = (*memItemRepo)(nil)

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	it := *item
	r.store.items = append(r.store.items, &it)
	return nil
}

func (r *memItemRepo) GetByName(_ context.Context, name string) (*entity.Item, error) {
	if it := r.store.itemByName(name); it != nil {
		ii := *it
		return &ii, nil
	}
	return nil, nil
}

func (r *memItemRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Item, error) {
	return r.GetByName(ctx, name)
}

func (r *memItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	for _, it := range r.store.items {
		if it.ID == id {
			it.Quantity = quantity
			return nil
		}
	}
	return errNotSeeded
}

func (r *memItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	return r.store.items, nil
}

type memPurchaseRepo struct{ store *memStore }

var _ repository.PurchaseRepository = (*memPurchaseRepo)(nil)

func (r *memPurchaseRepo) Create(_ context.Context, purchase *entity.Purchase) error {
	p := *purchase
	r.store.purchases = append(r.store.purchases, &p)
	return nil
}

type memSaleRepo struct{ store *memStore }

var _ repository.SaleRepository = (*memSaleRepo)(nil)

func (r *memSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	s := *sale
	r.store.sales = append(r.store.sales, &s)
	return nil
}

// ── tx runner ─────────────────────────────────────────────────────────────────

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	companyRepo repository.CompanyRepository,
	itemRepo repository.ItemRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := r.store.snapshot()
	err := fn(
		&memCompanyRepo{store: r.store},
		&memItemRepo{store: r.store},
		&memPurchaseRepo{store: r.store},
		&memSaleRepo{store: r.store},
	)
	if err != nil {
		*r.store = snap
		return err
	}
	return nil
}

var errNotSeeded = &notSeededError{}

type notSeededError struct{}

func (*notSeededError) Error() string { return "fila inexistente en el fake" }
