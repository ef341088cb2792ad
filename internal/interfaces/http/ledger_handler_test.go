package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ledger-pro/internal/application/dto"
	"github.com/jhoicas/ledger-pro/internal/application/ledger"
	"github.com/jhoicas/ledger-pro/internal/application/usecase"
	"github.com/jhoicas/ledger-pro/internal/domain"
	"github.com/jhoicas/ledger-pro/internal/domain/entity"
	"github.com/jhoicas/ledger-pro/internal/domain/repository"
	apphttp "github.com/jhoicas/ledger-pro/internal/interfaces/http"
	"github.com/jhoicas/ledger-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: stubTxRunner devuelve un error fijo sin ejecutar fn (para
// probar el mapeo error → status) o, con err nil, ejecuta fn contra repos
// mínimos en memoria (para probar el redirect de éxito).
// ──────────────────────────────────────────────────────────────────────────────

type stubState struct {
	company   *entity.Company
	items     []*entity.Item
	purchases int
	sales     int
}

type stubTxRunner struct {
	err   error
	state *stubState
}

func (s *stubTxRunner) Run(_ context.Context, fn func(
	companyRepo repository.CompanyRepository,
	itemRepo repository.ItemRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(
		&stubCompanyRepo{state: s.state},
		&stubItemRepo{state: s.state},
		&stubPurchaseRepo{state: s.state},
		&stubSaleRepo{state: s.state},
	)
}

type stubCompanyRepo struct{ state *stubState }

func (r *stubCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.state.company = c
	return nil
}

func (r *stubCompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	if r.state.company != nil && r.state.company.Name == name {
		c := *r.state.company
		return &c, nil
	}
	return nil, nil
}

func (r *stubCompanyRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Company, error) {
	return r.GetByName(ctx, name)
}

func (r *stubCompanyRepo) UpdateBalance(_ context.Context, _ string, balance decimal.Decimal) error {
	r.state.company.CashBalance = balance
	return nil
}

func (r *stubCompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	if r.state.company == nil {
		return nil, nil
	}
	return []*entity.Company{r.state.company}, nil
}

type stubItemRepo struct{ state *stubState }

func (r *stubItemRepo) Create(_ context.Context, it *entity.Item) error {
	r.state.items = append(r.state.items, it)
	return nil
}

func (r *stubItemRepo) GetByName(_ context.Context, name string) (*entity.Item, error) {
	for _, it := range r.state.items {
		if it.Name == name {
			ii := *it
			return &ii, nil
		}
	}
	return nil, nil
}

func (r *stubItemRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Item, error) {
	return r.GetByName(ctx, name)
}

func (r *stubItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	for _, it := range r.state.items {
		if it.ID == id {
			it.Quantity = quantity
		}
	}
	return nil
}

func (r *stubItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	return r.state.items, nil
}

type stubPurchaseRepo struct{ state *stubState }

func (r *stubPurchaseRepo) Create(_ context.Context, _ *entity.Purchase) error {
	r.state.purchases++
	return nil
}

type stubSaleRepo struct{ state *stubState }

func (r *stubSaleRepo) Create(_ context.Context, _ *entity.Sale) error {
	r.state.sales++
	return nil
}

// buildTestApp construye una app Fiber con las rutas del libro sobre el
// tx runner indicado. Las páginas HTML no se ejercitan aquí.
func buildTestApp(runner ledger.TxRunner, itemRepo repository.ItemRepository) *fiber.App {
	app := fiber.New()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:      usecase.NewCatalogUseCase(itemRepo),
		CompanyUC:      usecase.NewCompanyUseCase(&stubCompanyRepo{state: &stubState{}}),
		RecordPurchase: ledger.NewRecordPurchaseUseCase(runner),
		RecordSale:     ledger.NewRecordSaleUseCase(runner),
		AddItem:        ledger.NewAddItemUseCase(itemRepo),
		Log:            log,
	})
	return app
}

func postForm(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ── store_purchase ────────────────────────────────────────────────────────────

func TestStorePurchase_ExitosaRedirigeConAviso(t *testing.T) {
	state := &stubState{company: &entity.Company{
		ID: "c1", Name: "Acme", CashBalance: decimal.NewFromFloat(100),
	}}
	app := buildTestApp(&stubTxRunner{state: state}, &stubItemRepo{state: state})

	resp := postForm(t, app, "/store_purchase", "company=Acme&product=Widget&quantity=10&rate=2.0")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/?msg=")
	assert.True(t, state.company.CashBalance.Equal(decimal.NewFromFloat(80)))
	assert.Equal(t, 1, state.purchases)
}

func TestStorePurchase_EmpresaDesconocidaDevuelve404(t *testing.T) {
	app := buildTestApp(&stubTxRunner{err: domain.ErrCompanyNotFound}, &stubItemRepo{state: &stubState{}})

	resp := postForm(t, app, "/store_purchase", "company=Fantasma&product=Widget&quantity=1&rate=1")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "COMPANY_NOT_FOUND", decodeError(t, resp).Code)
}

func TestStorePurchase_CantidadMalformadaDevuelve400(t *testing.T) {
	// La validación falla antes de llegar al tx runner.
	app := buildTestApp(&stubTxRunner{state: &stubState{}}, &stubItemRepo{state: &stubState{}})

	resp := postForm(t, app, "/store_purchase", "company=Acme&product=Widget&quantity=diez&rate=2.0")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

// ── store_sale ────────────────────────────────────────────────────────────────

func TestStoreSale_ExitosaRedirigeConAviso(t *testing.T) {
	state := &stubState{
		company: &entity.Company{ID: "c1", Name: "Acme", CashBalance: decimal.NewFromFloat(80)},
		items: []*entity.Item{
			{ID: "i1", Name: "Widget", Rate: decimal.NewFromFloat(2), Quantity: 10},
		},
	}
	app := buildTestApp(&stubTxRunner{state: state}, &stubItemRepo{state: state})

	resp := postForm(t, app, "/store_sale", "company=Acme&product=Widget&quantity=4&rate=3.0")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.True(t, state.company.CashBalance.Equal(decimal.NewFromFloat(92)))
	assert.Equal(t, int64(6), state.items[0].Quantity)
	assert.Equal(t, 1, state.sales)
}

func TestStoreSale_SinExistenciasDevuelve409(t *testing.T) {
	app := buildTestApp(&stubTxRunner{err: domain.ErrInsufficientStock}, &stubItemRepo{state: &stubState{}})

	resp := postForm(t, app, "/store_sale", "company=Acme&product=Widget&quantity=100&rate=3")

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Code)
}

func TestStoreSale_ProductoInexistenteDevuelve404(t *testing.T) {
	app := buildTestApp(&stubTxRunner{err: domain.ErrProductNotFound}, &stubItemRepo{state: &stubState{}})

	resp := postForm(t, app, "/store_sale", "company=Acme&product=Nada&quantity=1&rate=1")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeError(t, resp).Code)
}

// ── add_item ──────────────────────────────────────────────────────────────────

func TestAddItem_ExitosoRedirige(t *testing.T) {
	state := &stubState{}
	app := buildTestApp(&stubTxRunner{state: state}, &stubItemRepo{state: state})

	resp := postForm(t, app, "/add_item", "name=Widget&rate=2.5")

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	require.Len(t, state.items, 1)
	assert.Equal(t, int64(0), state.items[0].Quantity)
}

func TestAddItem_TarifaMalformadaDevuelve400(t *testing.T) {
	state := &stubState{}
	app := buildTestApp(&stubTxRunner{state: state}, &stubItemRepo{state: state})

	resp := postForm(t, app, "/add_item", "name=Widget&rate=gratis")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
	assert.Empty(t, state.items)
}
