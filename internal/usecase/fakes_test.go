package usecase

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// noopLogger глушит логи в тестах.
type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx реализует pgx.Tx, запоминая коммиты и откаты.
type fakeTx struct {
	commits   int
	rollbacks int
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.commits++
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

// fakeDB отдаёт один и тот же fakeTx на каждый Begin.
type fakeDB struct {
	tx *fakeTx
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return db.tx, nil }

func (db *fakeDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return db.tx, nil
}

// fakeProductRepo держит товары в памяти.
type fakeProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
	saveErr  error
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[int64]*domain.Product), nextID: 1}
	for _, p := range products {
		if p.ID == 0 {
			p.ID = repo.nextID
		}
		if p.ID >= repo.nextID {
			repo.nextID = p.ID + 1
		}
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	saved := *product
	saved.ID = r.nextID
	r.nextID++
	r.products[saved.ID] = &saved
	return &saved, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return e.ErrProductNotFound
	}
	saved := *product
	r.products[product.ID] = &saved
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	found := *p
	return &found, nil
}

func (r *fakeProductRepo) FindAll(ctx context.Context) ([]*domain.Product, error) {
	all := make([]*domain.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			found := *p
			all = append(all, &found)
		}
	}
	return all, nil
}

func (r *fakeProductRepo) DeductStock(ctx context.Context, productID, qty int64) (*StockDeduction, error) {
	p, ok := r.products[productID]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	if p.QuantityInStock < qty {
		return nil, e.NewOutOfStockError(p.Name, qty, p.QuantityInStock)
	}
	p.QuantityInStock -= qty
	return NewStockDeduction(p.ID, p.Name, p.Category, p.Price, p.QuantityInStock), nil
}

// fakeCustomerRepo держит покупателей в памяти.
type fakeCustomerRepo struct {
	customers map[int64]*domain.Customer
	nextID    int64
}

func newFakeCustomerRepo(customers ...*domain.Customer) *fakeCustomerRepo {
	repo := &fakeCustomerRepo{customers: make(map[int64]*domain.Customer), nextID: 1}
	for _, c := range customers {
		if c.ID >= repo.nextID {
			repo.nextID = c.ID + 1
		}
		repo.customers[c.ID] = c
	}
	return repo
}

func (r *fakeCustomerRepo) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	for _, existing := range r.customers {
		if existing.Email == customer.Email {
			return nil, e.ErrEmailAlreadyExists
		}
	}
	saved := *customer
	saved.ID = r.nextID
	r.nextID++
	r.customers[saved.ID] = &saved
	return &saved, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return e.ErrCustomerNotFound
	}
	saved := *customer
	r.customers[customer.ID] = &saved
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return e.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	found := *c
	return &found, nil
}

func (r *fakeCustomerRepo) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	all := make([]*domain.Customer, 0, len(r.customers))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.customers[id]; ok {
			found := *c
			all = append(all, &found)
		}
	}
	return all, nil
}

// fakeOrderRepo запоминает сохранённые заказы.
type fakeOrderRepo struct {
	saved      []*domain.Order
	details    map[int64]*OrderDetail
	summaries  []OrderSummary
	items      []OrderItemRecord
	replaced   []*UpdateOrderReq
	deleted    []int64
	nextID     int64
	saveErr    error
	replaceErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{details: make(map[int64]*OrderDetail), nextID: 1}
}

func (r *fakeOrderRepo) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	order.ID = r.nextID
	r.nextID++
	r.saved = append(r.saved, order)
	return order, nil
}

func (r *fakeOrderRepo) Replace(ctx context.Context, req *UpdateOrderReq) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.replaced = append(r.replaced, req)
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.details[id]; !ok && len(r.saved) == 0 {
		return e.ErrOrderNotFound
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id int64) (*OrderDetail, error) {
	detail, ok := r.details[id]
	if !ok {
		return nil, nil
	}
	found := *detail
	found.Items = append([]OrderItemDetail(nil), detail.Items...)
	return &found, nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context) ([]OrderSummary, error) {
	return r.summaries, nil
}

func (r *fakeOrderRepo) ListItems(ctx context.Context) ([]OrderItemRecord, error) {
	return r.items, nil
}

// fakeOutboxRepo собирает созданные события.
type fakeOutboxRepo struct {
	created   []*OutboxEvent
	createErr error
}

func (r *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	saved := *event
	saved.ID = int64(len(r.created) + 1)
	r.created = append(r.created, &saved)
	return &saved, nil
}

func (r *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (r *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error { return nil }

// fakeCacheRepo запоминает вызовы инвалидации.
type fakeCacheRepo struct {
	stored     map[int64]ProductInfo
	deletedIDs [][]int64
	getErr     error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{stored: make(map[int64]ProductInfo)}
}

func (r *fakeCacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	hits := make(map[int64]ProductInfo)
	for _, id := range ids {
		if info, ok := r.stored[id]; ok {
			hits[id] = info
		}
	}
	return hits, nil
}

func (r *fakeCacheRepo) SetProducts(ctx context.Context, products []ProductInfo) error {
	for _, info := range products {
		r.stored[info.ID] = info
	}
	return nil
}

func (r *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	r.deletedIDs = append(r.deletedIDs, ids)
	for _, id := range ids {
		delete(r.stored, id)
	}
	return nil
}

var errBoom = fmt.Errorf("boom")
