package graphql

import (
	"context"
	"sort"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppurchase "github.com/fictus/bookstore/internal/application/purchase"
	appsimilarity "github.com/fictus/bookstore/internal/application/similarity"
	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
	"github.com/fictus/bookstore/pkg/jwt"
)

// fakeBookRepo is a map-backed book.Repository. The unembedded methods are
// the ones the exercised resolvers reach.
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func (r *fakeBookRepo) Create(ctx context.Context, bk *book.Book) error {
	bk.ID = uint(len(r.books) + 1)
	r.books[bk.ID] = bk
	return nil
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	bk, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	c := *bk
	return &c, nil
}

func (r *fakeBookRepo) FindByTitle(ctx context.Context, title string) (*book.Book, error) {
	for _, bk := range r.books {
		if bk.Title == title {
			c := *bk
			return &c, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) FindAll(ctx context.Context) ([]*book.Book, error) {
	out := make([]*book.Book, 0, len(r.books))
	for _, bk := range r.books {
		c := *bk
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBookRepo) FindByCategory(ctx context.Context, category book.Category) ([]*book.Book, error) {
	all, _ := r.FindAll(ctx)
	var out []*book.Book
	for _, bk := range all {
		if bk.Category == category {
			out = append(out, bk)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) FindByAuthorID(ctx context.Context, authorID uint) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) FindByBuyerID(ctx context.Context, buyerID uint) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, bk *book.Book) error {
	if _, ok := r.books[bk.ID]; !ok {
		return book.ErrBookNotFound
	}
	c := *bk
	r.books[bk.ID] = &c
	return nil
}

func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	bk, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if bk.Stock+delta < 0 {
		return book.ErrOutOfStock
	}
	bk.Stock += delta
	return nil
}

type fakeBuyerRepo struct {
	buyers    map[uint]*buyer.Buyer
	purchases [][2]uint
	wishlist  map[uint][]uint
}

func newFakeBuyerRepo() *fakeBuyerRepo {
	return &fakeBuyerRepo{
		buyers:   make(map[uint]*buyer.Buyer),
		wishlist: make(map[uint][]uint),
	}
}

func (r *fakeBuyerRepo) Create(ctx context.Context, b *buyer.Buyer) error {
	b.ID = uint(len(r.buyers) + 1)
	r.buyers[b.ID] = b
	return nil
}

func (r *fakeBuyerRepo) FindByID(ctx context.Context, id uint) (*buyer.Buyer, error) {
	b, ok := r.buyers[id]
	if !ok {
		return nil, buyer.ErrBuyerNotFound
	}
	c := *b
	return &c, nil
}

func (r *fakeBuyerRepo) FindByUserID(ctx context.Context, userID uint) (*buyer.Buyer, error) {
	for _, b := range r.buyers {
		if b.UserID == userID {
			c := *b
			return &c, nil
		}
	}
	return nil, buyer.ErrBuyerNotFound
}

func (r *fakeBuyerRepo) FindAll(ctx context.Context) ([]*buyer.Buyer, error) {
	out := make([]*buyer.Buyer, 0, len(r.buyers))
	for _, b := range r.buyers {
		c := *b
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBuyerRepo) FindByBookID(ctx context.Context, bookID uint) ([]*buyer.Buyer, error) {
	return nil, nil
}

func (r *fakeBuyerRepo) Update(ctx context.Context, b *buyer.Buyer) error {
	if _, ok := r.buyers[b.ID]; !ok {
		return buyer.ErrBuyerNotFound
	}
	c := *b
	r.buyers[b.ID] = &c
	return nil
}

func (r *fakeBuyerRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.buyers[id]; !ok {
		return buyer.ErrBuyerNotFound
	}
	delete(r.buyers, id)
	return nil
}

func (r *fakeBuyerRepo) LockByID(ctx context.Context, id uint) (*buyer.Buyer, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBuyerRepo) UpdateWallet(ctx context.Context, id uint, delta int64) error {
	b, ok := r.buyers[id]
	if !ok {
		return buyer.ErrBuyerNotFound
	}
	if b.Wallet+delta < 0 {
		return buyer.ErrInsufficientFunds
	}
	b.Wallet += delta
	return nil
}

func (r *fakeBuyerRepo) AddPurchasedBook(ctx context.Context, buyerID, bookID uint) error {
	r.purchases = append(r.purchases, [2]uint{buyerID, bookID})
	return nil
}

func (r *fakeBuyerRepo) AddToWishlist(ctx context.Context, buyerID, bookID uint) error {
	for _, id := range r.wishlist[buyerID] {
		if id == bookID {
			return nil
		}
	}
	r.wishlist[buyerID] = append(r.wishlist[buyerID], bookID)
	return nil
}

func (r *fakeBuyerRepo) FindWishlist(ctx context.Context, buyerID uint) ([]uint, error) {
	return r.wishlist[buyerID], nil
}

// passTx just runs fn; the fakes have no transactional state.
type passTx struct{}

func (passTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type schemaFixture struct {
	schema graphql.Schema
	books  *fakeBookRepo
	buyers *fakeBuyerRepo
}

func newSchemaFixture(t *testing.T) *schemaFixture {
	t.Helper()

	books := &fakeBookRepo{books: map[uint]*book.Book{
		1: {ID: 1, Title: "It", Category: book.CategoryFiction, Stock: 5, Price: 1000, Introduction: "a clown haunts a town", AuthorID: 1},
		2: {ID: 2, Title: "The Shining", Category: book.CategoryFiction, Stock: 2, Price: 1250, Introduction: "a haunted hotel in winter", AuthorID: 1},
		3: {ID: 3, Title: "Misery", Category: book.CategoryFiction, Stock: 1, Price: 900, Introduction: "a writer held captive", AuthorID: 1},
		4: {ID: 4, Title: "Cooking 101", Category: book.CategoryNonFiction, Stock: 9, Price: 500, Introduction: "a clown haunts a town", AuthorID: 2},
	}}
	buyers := newFakeBuyerRepo()
	buyers.buyers[1] = &buyer.Buyer{ID: 1, FirstName: "Jane", LastName: "Doe", EmailAddress: "jane@example.com", Wallet: 1500, UserID: 101}

	r := &Resolvers{
		Books:     book.NewService(books),
		Buyers:    buyer.NewService(buyers),
		BookRepo:  books,
		BuyerRepo: buyers,
		Purchase:  apppurchase.NewUseCase(buyers, books, passTx{}, nil),
		Wishlist:  apppurchase.NewWishlistUseCase(buyers, books),
		Similar:   appsimilarity.NewFindSimilarUseCase(books, nil),
	}

	schema, err := NewSchema(r)
	require.NoError(t, err)

	return &schemaFixture{schema: schema, books: books, buyers: buyers}
}

func (f *schemaFixture) do(ctx context.Context, query string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        f.schema,
		RequestString: query,
		Context:       ctx,
	})
}

func buyerContext(userID uint) context.Context {
	claims := &jwt.Claims{UserID: userID, Email: "jane@example.com", Role: "BUYER"}
	return WithIdentity(context.Background(), claims, "test-token")
}

func TestSchema_GetAllBooks(t *testing.T) {
	f := newSchemaFixture(t)

	result := f.do(context.Background(), `{ getAllBooks { id title category stock price } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	list := data["getAllBooks"].([]interface{})
	require.Len(t, list, 4)

	first := list[0].(map[string]interface{})
	assert.Equal(t, 1, first["id"])
	assert.Equal(t, "It", first["title"])
	assert.Equal(t, "FICTION", first["category"])
	assert.Equal(t, 5, first["stock"])
	assert.Equal(t, 10.0, first["price"], "cents are exposed as currency units")
}

func TestSchema_SimilarBooks(t *testing.T) {
	f := newSchemaFixture(t)

	result := f.do(context.Background(), `{ similarBooks(id: 1) { id } }`)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	list := data["similarBooks"].([]interface{})

	var ids []int
	for _, item := range list {
		ids = append(ids, item.(map[string]interface{})["id"].(int))
	}
	// Book 4 shares the introduction but not the category; 1 is the reference.
	assert.NotContains(t, ids, 1)
	assert.NotContains(t, ids, 4)
	assert.Subset(t, []int{2, 3}, ids)
}

func TestSchema_PurchaseBook(t *testing.T) {
	t.Run("buyer purchases and sees the new balance", func(t *testing.T) {
		f := newSchemaFixture(t)

		result := f.do(buyerContext(101), `mutation { purchaseBook(bookId: 1) { id wallet } }`)
		require.Empty(t, result.Errors)

		data := result.Data.(map[string]interface{})
		got := data["purchaseBook"].(map[string]interface{})
		assert.Equal(t, 5.0, got["wallet"], "15.00 - 10.00")

		assert.Equal(t, int64(500), f.buyers.buyers[1].Wallet)
		assert.Equal(t, 4, f.books.books[1].Stock)
		require.Len(t, f.buyers.purchases, 1)
	})

	t.Run("anonymous request is rejected", func(t *testing.T) {
		f := newSchemaFixture(t)

		result := f.do(context.Background(), `mutation { purchaseBook(bookId: 1) { id } }`)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "not authenticated")

		assert.Equal(t, 5, f.books.books[1].Stock, "nothing changes on auth failure")
	})

	t.Run("insufficient funds surfaces as an error", func(t *testing.T) {
		f := newSchemaFixture(t)
		f.buyers.buyers[1].Wallet = 100

		result := f.do(buyerContext(101), `mutation { purchaseBook(bookId: 1) { id } }`)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, 5, f.books.books[1].Stock)
	})
}

func TestSchema_AddToWishlist(t *testing.T) {
	f := newSchemaFixture(t)

	result := f.do(buyerContext(101), `mutation { addToWishlist(bookId: 2) { id } }`)
	require.Empty(t, result.Errors)
	assert.Equal(t, []uint{2}, f.buyers.wishlist[1])
}

func TestSchema_Me(t *testing.T) {
	f := newSchemaFixture(t)

	t.Run("returns the caller's profile", func(t *testing.T) {
		result := f.do(buyerContext(101), `{ me { id emailAddress } }`)
		require.Empty(t, result.Errors)

		data := result.Data.(map[string]interface{})
		me := data["me"].(map[string]interface{})
		assert.Equal(t, "jane@example.com", me["emailAddress"])
	})

	t.Run("anonymous", func(t *testing.T) {
		result := f.do(context.Background(), `{ me { id } }`)
		require.NotEmpty(t, result.Errors)
	})
}

func TestSchema_RoleEnforcement(t *testing.T) {
	f := newSchemaFixture(t)

	t.Run("buyer cannot create books", func(t *testing.T) {
		result := f.do(buyerContext(101),
			`mutation { createBook(title: "X", category: FICTION, price: 9.99, authorId: 1) { id } }`)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "insufficient permissions")
	})

	t.Run("buyer cannot list buyers", func(t *testing.T) {
		result := f.do(buyerContext(101), `{ getAllBuyers { id } }`)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "insufficient permissions")
	})

	t.Run("anonymous cannot list buyers", func(t *testing.T) {
		result := f.do(context.Background(), `{ getAllBuyers { id } }`)
		require.NotEmpty(t, result.Errors)
		assert.Contains(t, result.Errors[0].Message, "not authenticated")
	})
}
