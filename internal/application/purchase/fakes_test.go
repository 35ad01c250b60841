package purchase

import (
	"context"
	"sort"

	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
)

// memStore is a shared in-memory backing store for the fake repositories.
// Reads and LockByID hand out copies; only the guarded update methods mutate
// the store itself, mirroring how the real repositories split reads from
// writes.
type memStore struct {
	buyers    map[uint]*buyer.Buyer
	books     map[uint]*book.Book
	purchases []purchaseRow
	wishlist  map[uint][]uint
}

type purchaseRow struct {
	buyerID uint
	bookID  uint
}

func newMemStore() *memStore {
	return &memStore{
		buyers:   make(map[uint]*buyer.Buyer),
		books:    make(map[uint]*book.Book),
		wishlist: make(map[uint][]uint),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, b := range s.buyers {
		c := *b
		cp.buyers[id] = &c
	}
	for id, bk := range s.books {
		c := *bk
		cp.books[id] = &c
	}
	cp.purchases = append([]purchaseRow(nil), s.purchases...)
	for id, ids := range s.wishlist {
		cp.wishlist[id] = append([]uint(nil), ids...)
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.buyers = from.buyers
	s.books = from.books
	s.purchases = from.purchases
	s.wishlist = from.wishlist
}

// memTxManager snapshots the store before running fn and restores it when fn
// fails, so a failed purchase leaves no partial writes behind.
type memTxManager struct {
	store *memStore
	calls int
}

func (m *memTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	before := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(before)
		return err
	}
	return nil
}

type memBuyerRepo struct {
	store *memStore
}

func (r *memBuyerRepo) Create(ctx context.Context, b *buyer.Buyer) error {
	c := *b
	r.store.buyers[b.ID] = &c
	return nil
}

func (r *memBuyerRepo) FindByID(ctx context.Context, id uint) (*buyer.Buyer, error) {
	b, ok := r.store.buyers[id]
	if !ok {
		return nil, buyer.ErrBuyerNotFound
	}
	c := *b
	return &c, nil
}

func (r *memBuyerRepo) FindByUserID(ctx context.Context, userID uint) (*buyer.Buyer, error) {
	for _, b := range r.store.buyers {
		if b.UserID == userID {
			c := *b
			return &c, nil
		}
	}
	return nil, buyer.ErrBuyerNotFound
}

func (r *memBuyerRepo) FindAll(ctx context.Context) ([]*buyer.Buyer, error) {
	out := make([]*buyer.Buyer, 0, len(r.store.buyers))
	for _, b := range r.store.buyers {
		c := *b
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memBuyerRepo) FindByBookID(ctx context.Context, bookID uint) ([]*buyer.Buyer, error) {
	var out []*buyer.Buyer
	for _, row := range r.store.purchases {
		if row.bookID != bookID {
			continue
		}
		if b, ok := r.store.buyers[row.buyerID]; ok {
			c := *b
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memBuyerRepo) Update(ctx context.Context, b *buyer.Buyer) error {
	if _, ok := r.store.buyers[b.ID]; !ok {
		return buyer.ErrBuyerNotFound
	}
	c := *b
	r.store.buyers[b.ID] = &c
	return nil
}

func (r *memBuyerRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.store.buyers[id]; !ok {
		return buyer.ErrBuyerNotFound
	}
	delete(r.store.buyers, id)
	return nil
}

func (r *memBuyerRepo) LockByID(ctx context.Context, id uint) (*buyer.Buyer, error) {
	return r.FindByID(ctx, id)
}

func (r *memBuyerRepo) UpdateWallet(ctx context.Context, id uint, delta int64) error {
	b, ok := r.store.buyers[id]
	if !ok {
		return buyer.ErrBuyerNotFound
	}
	if b.Wallet+delta < 0 {
		return buyer.ErrInsufficientFunds
	}
	b.Wallet += delta
	return nil
}

func (r *memBuyerRepo) AddPurchasedBook(ctx context.Context, buyerID, bookID uint) error {
	r.store.purchases = append(r.store.purchases, purchaseRow{buyerID: buyerID, bookID: bookID})
	return nil
}

func (r *memBuyerRepo) AddToWishlist(ctx context.Context, buyerID, bookID uint) error {
	for _, id := range r.store.wishlist[buyerID] {
		if id == bookID {
			return nil
		}
	}
	r.store.wishlist[buyerID] = append(r.store.wishlist[buyerID], bookID)
	return nil
}

func (r *memBuyerRepo) FindWishlist(ctx context.Context, buyerID uint) ([]uint, error) {
	return append([]uint(nil), r.store.wishlist[buyerID]...), nil
}

type memBookRepo struct {
	store *memStore
}

func (r *memBookRepo) Create(ctx context.Context, bk *book.Book) error {
	c := *bk
	r.store.books[bk.ID] = &c
	return nil
}

func (r *memBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	bk, ok := r.store.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	c := *bk
	return &c, nil
}

func (r *memBookRepo) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	for _, bk := range r.store.books {
		if bk.Title == title {
			c := *bk
			return &c, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *memBookRepo) FindAll(ctx context.Context) ([]*book.Book, error) {
	out := make([]*book.Book, 0, len(r.store.books))
	for _, bk := range r.store.books {
		c := *bk
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memBookRepo) FindByCategory(ctx context.Context, category book.Category) ([]*book.Book, error) {
	all, _ := r.FindAll(ctx)
	var out []*book.Book
	for _, bk := range all {
		if bk.Category == category {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (r *memBookRepo) FindByAuthorID(ctx context.Context, authorID uint) ([]*book.Book, error) {
	all, _ := r.FindAll(ctx)
	var out []*book.Book
	for _, bk := range all {
		if bk.AuthorID == authorID {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (r *memBookRepo) FindByBuyerID(ctx context.Context, buyerID uint) ([]*book.Book, error) {
	var out []*book.Book
	for _, row := range r.store.purchases {
		if row.buyerID != buyerID {
			continue
		}
		if bk, ok := r.store.books[row.bookID]; ok {
			c := *bk
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memBookRepo) Update(ctx context.Context, bk *book.Book) error {
	if _, ok := r.store.books[bk.ID]; !ok {
		return book.ErrBookNotFound
	}
	c := *bk
	r.store.books[bk.ID] = &c
	return nil
}

func (r *memBookRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.store.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.store.books, id)
	return nil
}

func (r *memBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *memBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	bk, ok := r.store.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if bk.Stock+delta < 0 {
		return book.ErrOutOfStock
	}
	bk.Stock += delta
	return nil
}

// capturingPublisher records published events.
type capturingPublisher struct {
	keys     []string
	payloads []interface{}
	err      error
}

func (p *capturingPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, routingKey)
	p.payloads = append(p.payloads, payload)
	return nil
}
