package ledger_test

import (
	"context"

	"github.com/tu-usuario/store-ledger/internal/domain/entity"
	"github.com/tu-usuario/store-ledger/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos del motor de posting
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[string]*entity.Store)}
}

func (r *fakeStoreRepo) Create(s *entity.Store) error {
	r.stores[s.ID] = s
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.stores[id], nil
}

func (r *fakeStoreRepo) Update(s *entity.Store) error {
	r.stores[s.ID] = s
	return nil
}

func (r *fakeStoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	out := make([]*entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStoreRepo) Delete(id string) error {
	delete(r.stores, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado compartido del libro mayor + existencias, con semántica transaccional
// ──────────────────────────────────────────────────────────────────────────────

// ledgerState es el estado que la unidad de trabajo muta de forma atómica.
type ledgerState struct {
	transactions map[string]*entity.Transaction
	order        []string // IDs en orden de inserción
	lineItems    map[string][]*entity.TransactionLineItem
	stock        map[string]*entity.StockLevel // key: storeID + "|" + productID
}

func newLedgerState() *ledgerState {
	return &ledgerState{
		transactions: make(map[string]*entity.Transaction),
		lineItems:    make(map[string][]*entity.TransactionLineItem),
		stock:        make(map[string]*entity.StockLevel),
	}
}

func (s *ledgerState) clone() *ledgerState {
	c := newLedgerState()
	for k, v := range s.transactions {
		cp := *v
		c.transactions[k] = &cp
	}
	c.order = append(c.order, s.order...)
	for k, items := range s.lineItems {
		for _, it := range items {
			cp := *it
			c.lineItems[k] = append(c.lineItems[k], &cp)
		}
	}
	for k, v := range s.stock {
		cp := *v
		c.stock[k] = &cp
	}
	return c
}

func stockKey(storeID, productID string) string {
	return storeID + "|" + productID
}

type fakeTrxRepo struct {
	state     *ledgerState
	createErr error // si se setea, Create falla (simula falla de BD)
}

func (r *fakeTrxRepo) Create(trx *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *trx
	r.state.transactions[trx.ID] = &cp
	r.state.order = append(r.state.order, trx.ID)
	return nil
}

func (r *fakeTrxRepo) CreateLineItem(item *entity.TransactionLineItem) error {
	cp := *item
	r.state.lineItems[item.TransactionID] = append(r.state.lineItems[item.TransactionID], &cp)
	return nil
}

func (r *fakeTrxRepo) GetByID(id string) (*entity.Transaction, error) {
	return r.state.transactions[id], nil
}

func (r *fakeTrxRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.state.order))
	for i := len(r.state.order) - 1; i >= 0; i-- {
		out = append(out, r.state.transactions[r.state.order[i]])
	}
	return out, nil
}

func (r *fakeTrxRepo) ListLineItems(transactionID string) ([]*entity.TransactionLineItem, error) {
	return r.state.lineItems[transactionID], nil
}

type fakeStockRepo struct {
	state *ledgerState
}

func (r *fakeStockRepo) Get(storeID, productID string) (*entity.StockLevel, error) {
	if l, ok := r.state.stock[stockKey(storeID, productID)]; ok {
		cp := *l
		return &cp, nil
	}
	return &entity.StockLevel{StoreID: storeID, ProductID: productID, Quantity: 0}, nil
}

func (r *fakeStockRepo) GetForUpdate(storeID, productID string) (*entity.StockLevel, error) {
	return r.Get(storeID, productID)
}

func (r *fakeStockRepo) Upsert(level *entity.StockLevel) error {
	cp := *level
	r.state.stock[stockKey(level.StoreID, level.ProductID)] = &cp
	return nil
}

func (r *fakeStockRepo) ListByStore(storeID string) ([]*entity.StockLevel, error) {
	var out []*entity.StockLevel
	for _, l := range r.state.stock {
		if l.StoreID == storeID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta la unidad de trabajo sobre una copia del estado y solo
// publica la copia si la función termina sin error: mismo contrato de
// atomicidad que una transacción de BD con rollback.
type fakeTxRunner struct {
	state     *ledgerState
	createErr error // propagado al fakeTrxRepo de cada unidad de trabajo
	// beforeRun muta el estado publicado justo antes de abrir la unidad de
	// trabajo: simula otro posting commiteado entre la validación y el lock.
	beforeRun func(*ledgerState)
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	trxRepo repository.TransactionRepository,
	stockRepo repository.StockLevelRepository,
) error) error {
	if tr.beforeRun != nil {
		tr.beforeRun(tr.state)
		tr.beforeRun = nil
	}
	working := tr.state.clone()
	err := fn(
		&fakeTrxRepo{state: working, createErr: tr.createErr},
		&fakeStockRepo{state: working},
	)
	if err != nil {
		return err
	}
	*tr.state = *working
	return nil
}

// stockQuantity lectura directa del estado para asserts.
func (s *ledgerState) stockQuantity(storeID, productID string) int64 {
	if l, ok := s.stock[stockKey(storeID, productID)]; ok {
		return l.Quantity
	}
	return 0
}
