// Package graphql exposes the store's API as a GraphQL schema built with
// graphql-go. Types and resolvers are declared in code; there is no SDL file.
package graphql

import (
	"math"
	"time"

	"github.com/graphql-go/graphql"

	appaddress "github.com/fictus/bookstore/internal/application/address"
	appbook "github.com/fictus/bookstore/internal/application/book"
	apppurchase "github.com/fictus/bookstore/internal/application/purchase"
	apprating "github.com/fictus/bookstore/internal/application/rating"
	appsimilarity "github.com/fictus/bookstore/internal/application/similarity"
	appuser "github.com/fictus/bookstore/internal/application/user"
	"github.com/fictus/bookstore/internal/domain/author"
	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
	"github.com/fictus/bookstore/internal/domain/employee"
	"github.com/fictus/bookstore/internal/domain/rating"
)

// Resolvers bundles everything the schema needs. Catalog reads go straight to
// the domain services; cross-aggregate operations go through the application
// use cases.
type Resolvers struct {
	Books     book.Service
	Authors   author.Service
	Buyers    buyer.Service
	Employees employee.Service
	Ratings   rating.Service

	BookRepo  book.Repository
	BuyerRepo buyer.Repository

	Catalog   *appbook.CatalogUseCase
	Purchase  *apppurchase.UseCase
	Wishlist  *apppurchase.WishlistUseCase
	Similar   *appsimilarity.FindSimilarUseCase
	Addresses *appaddress.UseCase
	Rate      *apprating.UseCase
	Register  *appuser.RegisterUseCase
	Login     *appuser.LoginUseCase
	Logout    *appuser.LogoutUseCase
}

// centsToUnits converts a stored cent amount to the Float the API exposes.
func centsToUnits(cents int64) float64 {
	return float64(cents) / 100.0
}

// unitsToCents converts an API Float amount to cents.
func unitsToCents(units float64) int64 {
	return int64(math.Round(units * 100))
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// argUint reads a required Int argument as uint.
func argUint(p graphql.ResolveParams, name string) uint {
	v, _ := p.Args[name].(int)
	return uint(v)
}

func argString(p graphql.ResolveParams, name string) string {
	v, _ := p.Args[name].(string)
	return v
}

// optString returns a pointer when the optional argument was supplied.
func optString(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}

func optInt(p graphql.ResolveParams, name string) *int {
	if v, ok := p.Args[name].(int); ok {
		return &v
	}
	return nil
}

func optFloat(p graphql.ResolveParams, name string) *float64 {
	if v, ok := p.Args[name].(float64); ok {
		return &v
	}
	return nil
}

func optBool(p graphql.ResolveParams, name string) *bool {
	if v, ok := p.Args[name].(bool); ok {
		return &v
	}
	return nil
}
