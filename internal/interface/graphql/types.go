package graphql

import (
	"github.com/graphql-go/graphql"

	appuser "github.com/fictus/bookstore/internal/application/user"
	"github.com/fictus/bookstore/internal/domain/address"
	"github.com/fictus/bookstore/internal/domain/author"
	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
	"github.com/fictus/bookstore/internal/domain/employee"
	"github.com/fictus/bookstore/internal/domain/rating"
	"github.com/fictus/bookstore/internal/domain/user"
)

// schemaBuilder holds the shared type objects. Book and Author (and Buyer and
// Address) reference each other, so the object fields are declared as thunks
// that resolve once the whole set exists.
type schemaBuilder struct {
	r *Resolvers

	categoryEnum     *graphql.Enum
	userRoleEnum     *graphql.Enum
	employeeRoleEnum *graphql.Enum

	bookType        *graphql.Object
	authorType      *graphql.Object
	buyerType       *graphql.Object
	employeeType    *graphql.Object
	addressType     *graphql.Object
	ratingType      *graphql.Object
	loginPayload    *graphql.Object
	registerPayload *graphql.Object
}

func newSchemaBuilder(r *Resolvers) *schemaBuilder {
	sb := &schemaBuilder{r: r}
	sb.buildEnums()
	sb.buildObjects()
	return sb
}

func (sb *schemaBuilder) buildEnums() {
	categoryValues := graphql.EnumValueConfigMap{}
	for _, c := range book.Categories() {
		categoryValues[string(c)] = &graphql.EnumValueConfig{Value: c}
	}
	sb.categoryEnum = graphql.NewEnum(graphql.EnumConfig{
		Name:   "Category",
		Values: categoryValues,
	})

	sb.userRoleEnum = graphql.NewEnum(graphql.EnumConfig{
		Name: "UserRole",
		Values: graphql.EnumValueConfigMap{
			string(user.RoleBuyer):   &graphql.EnumValueConfig{Value: user.RoleBuyer},
			string(user.RoleManager): &graphql.EnumValueConfig{Value: user.RoleManager},
		},
	})

	employeeRoleValues := graphql.EnumValueConfigMap{}
	for _, role := range employee.Roles() {
		employeeRoleValues[string(role)] = &graphql.EnumValueConfig{Value: role}
	}
	sb.employeeRoleEnum = graphql.NewEnum(graphql.EnumConfig{
		Name:   "EmployeeRole",
		Values: employeeRoleValues,
	})
}

func (sb *schemaBuilder) buildObjects() {
	r := sb.r

	sb.bookType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return int(p.Source.(*book.Book).ID), nil
					},
				},
				"title": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*book.Book).Title, nil
					},
				},
				"publishedDate": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*book.Book).PublishedDate, nil
					},
				},
				"category": &graphql.Field{
					Type: graphql.NewNonNull(sb.categoryEnum),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*book.Book).Category, nil
					},
				},
				"stock": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*book.Book).Stock, nil
					},
				},
				"price": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Float),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return centsToUnits(p.Source.(*book.Book).Price), nil
					},
				},
				"introduction": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*book.Book).Introduction, nil
					},
				},
				"tags": &graphql.Field{
					Type: graphql.NewList(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*book.Book).Tags, nil
					},
				},
				"author": &graphql.Field{
					Type: sb.authorType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.Authors.GetByID(p.Context, p.Source.(*book.Book).AuthorID)
					},
				},
				"buyers": &graphql.Field{
					Type: graphql.NewList(sb.buyerType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.BuyerRepo.FindByBookID(p.Context, p.Source.(*book.Book).ID)
					},
				},
				"ratings": &graphql.Field{
					Type: graphql.NewList(sb.ratingType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.Ratings.ListByBook(p.Context, p.Source.(*book.Book).ID)
					},
				},
				"averageRating": &graphql.Field{
					Type: graphql.Float,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.Ratings.AverageRating(p.Context, p.Source.(*book.Book).ID)
					},
				},
			}
		}),
	})

	sb.authorType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return int(p.Source.(*author.Author).ID), nil
					},
				},
				"name": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*author.Author).Name, nil
					},
				},
				"birth": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*author.Author).Birth.Format(dateLayout), nil
					},
				},
				"categories": &graphql.Field{
					Type: graphql.NewList(sb.categoryEnum),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*author.Author).Categories, nil
					},
				},
				"books": &graphql.Field{
					Type: graphql.NewList(sb.bookType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.BookRepo.FindByAuthorID(p.Context, p.Source.(*author.Author).ID)
					},
				},
			}
		}),
	})

	sb.buyerType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Buyer",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return int(p.Source.(*buyer.Buyer).ID), nil
					},
				},
				"firstName": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*buyer.Buyer).FirstName, nil
					},
				},
				"lastName": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*buyer.Buyer).LastName, nil
					},
				},
				"fullName": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*buyer.Buyer).FullName(), nil
					},
				},
				"emailAddress": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*buyer.Buyer).EmailAddress, nil
					},
				},
				"phoneNumber": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*buyer.Buyer).PhoneNumber, nil
					},
				},
				"birth": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*buyer.Buyer).Birth.Format(dateLayout), nil
					},
				},
				"wallet": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Float),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return centsToUnits(p.Source.(*buyer.Buyer).Wallet), nil
					},
				},
				"books": &graphql.Field{
					Type: graphql.NewList(sb.bookType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.BookRepo.FindByBuyerID(p.Context, p.Source.(*buyer.Buyer).ID)
					},
				},
				"wishlist": &graphql.Field{
					Type: graphql.NewList(sb.bookType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						ids, err := r.BuyerRepo.FindWishlist(p.Context, p.Source.(*buyer.Buyer).ID)
						if err != nil {
							return nil, err
						}
						books := make([]*book.Book, 0, len(ids))
						for _, id := range ids {
							b, err := r.BookRepo.FindByID(p.Context, id)
							if err != nil {
								return nil, err
							}
							books = append(books, b)
						}
						return books, nil
					},
				},
				"addresses": &graphql.Field{
					Type: graphql.NewList(sb.addressType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.Addresses.ListByBuyer(p.Context, p.Source.(*buyer.Buyer).ID)
					},
				},
			}
		}),
	})

	sb.employeeType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Employee",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return int(p.Source.(*employee.Employee).ID), nil
					},
				},
				"firstName": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*employee.Employee).FirstName, nil
					},
				},
				"lastName": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*employee.Employee).LastName, nil
					},
				},
				"fullName": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*employee.Employee).FullName(), nil
					},
				},
				"emailAddress": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*employee.Employee).EmailAddress, nil
					},
				},
				"role": &graphql.Field{
					Type: graphql.NewNonNull(sb.employeeRoleEnum),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*employee.Employee).Role, nil
					},
				},
				"boss": &graphql.Field{
					Type: sb.employeeType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						bossID := p.Source.(*employee.Employee).BossID
						if bossID == 0 {
							return nil, nil
						}
						return r.Employees.GetByID(p.Context, bossID)
					},
				},
				"subordinates": &graphql.Field{
					Type: graphql.NewList(sb.employeeType),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.Employees.ListByBoss(p.Context, p.Source.(*employee.Employee).ID)
					},
				},
			}
		}),
	})

	sb.addressType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Address",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return int(p.Source.(*address.Address).ID), nil
					},
				},
				"streetLine1": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*address.Address).StreetLine1, nil
					},
				},
				"streetLine2": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*address.Address).StreetLine2, nil
					},
				},
				"city": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*address.Address).City, nil
					},
				},
				"province": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*address.Address).Province, nil
					},
				},
				"postalCode": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*address.Address).PostalCode, nil
					},
				},
				"phoneNumber": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*address.Address).PhoneNumber, nil
					},
				},
				"defaultShippingAddress": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Boolean),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*address.Address).DefaultShippingAddress, nil
					},
				},
				"defaultBillingAddress": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Boolean),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*address.Address).DefaultBillingAddress, nil
					},
				},
				"buyer": &graphql.Field{
					Type: sb.buyerType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.Buyers.GetByID(p.Context, p.Source.(*address.Address).BuyerID)
					},
				},
			}
		}),
	})

	sb.ratingType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Rating",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return int(p.Source.(*rating.Rating).ID), nil
					},
				},
				"value": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Float),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*rating.Rating).Value, nil
					},
				},
				"review": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*rating.Rating).Review, nil
					},
				},
				"userId": &graphql.Field{
					Type: graphql.NewNonNull(graphql.Int),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return int(p.Source.(*rating.Rating).UserID), nil
					},
				},
				"book": &graphql.Field{
					Type: sb.bookType,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return r.BookRepo.FindByID(p.Context, p.Source.(*rating.Rating).BookID)
					},
				},
			}
		}),
	})

	sb.loginPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "LoginPayload",
		Fields: graphql.Fields{
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(p.Source.(*appuser.LoginResponse).UserID), nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*appuser.LoginResponse).Email, nil
				},
			},
			"role": &graphql.Field{
				Type: graphql.NewNonNull(sb.userRoleEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*appuser.LoginResponse).Role, nil
				},
			},
			"accessToken": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*appuser.LoginResponse).AccessToken, nil
				},
			},
			"refreshToken": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*appuser.LoginResponse).RefreshToken, nil
				},
			},
			"expiresIn": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(p.Source.(*appuser.LoginResponse).ExpiresIn), nil
				},
			},
		},
	})

	sb.registerPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "RegisterPayload",
		Fields: graphql.Fields{
			"userId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return int(p.Source.(*appuser.RegisterResponse).UserID), nil
				},
			},
			"buyerId": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					resp := p.Source.(*appuser.RegisterResponse)
					if resp.BuyerID == 0 {
						return nil, nil
					}
					return int(resp.BuyerID), nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*appuser.RegisterResponse).Email, nil
				},
			},
			"role": &graphql.Field{
				Type: graphql.NewNonNull(sb.userRoleEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*appuser.RegisterResponse).Role, nil
				},
			},
		},
	})
}
