package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	appuser "github.com/fictus/bookstore/internal/application/user"
	"github.com/fictus/bookstore/internal/domain/address"
	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
	"github.com/fictus/bookstore/internal/domain/employee"
	"github.com/fictus/bookstore/internal/domain/user"
	"github.com/fictus/bookstore/pkg/metrics"
)

// NewSchema builds the executable schema.
func NewSchema(r *Resolvers) (graphql.Schema, error) {
	sb := newSchemaBuilder(r)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: sb.queryFields(),
	})
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: sb.mutationFields(),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// instrument records request count and latency per operation.
func instrument(name string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		start := time.Now()
		out, err := fn(p)
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.GraphQLRequests.WithLabelValues(name, status).Inc()
		metrics.GraphQLDuration.Observe(time.Since(start).Seconds())
		return out, err
	}
}

func (sb *schemaBuilder) queryFields() graphql.Fields {
	r := sb.r

	return graphql.Fields{
		"getAllBooks": &graphql.Field{
			Type: graphql.NewList(sb.bookType),
			Resolve: instrument("getAllBooks", func(p graphql.ResolveParams) (interface{}, error) {
				return r.Books.ListAll(p.Context)
			}),
		},
		"getBookById": &graphql.Field{
			Type: sb.bookType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: instrument("getBookById", func(p graphql.ResolveParams) (interface{}, error) {
				return r.Books.GetByID(p.Context, argUint(p, "id"))
			}),
		},
		"getBookByTitle": &graphql.Field{
			Type: sb.bookType,
			Args: graphql.FieldConfigArgument{
				"title": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: instrument("getBookByTitle", func(p graphql.ResolveParams) (interface{}, error) {
				return r.Books.GetByTitle(p.Context, argString(p, "title"))
			}),
		},
		"similarBooks": &graphql.Field{
			Type: graphql.NewList(sb.bookType),
			Args: graphql.FieldConfigArgument{
				"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"topN": &graphql.ArgumentConfig{Type: graphql.Int},
			},
			Resolve: instrument("similarBooks", func(p graphql.ResolveParams) (interface{}, error) {
				topN := 0
				if v := optInt(p, "topN"); v != nil {
					topN = *v
				}
				return r.Similar.Execute(p.Context, argUint(p, "id"), topN)
			}),
		},
		"getAllAuthors": &graphql.Field{
			Type: graphql.NewList(sb.authorType),
			Resolve: instrument("getAllAuthors", func(p graphql.ResolveParams) (interface{}, error) {
				return r.Authors.ListAll(p.Context)
			}),
		},
		"getAuthorById": &graphql.Field{
			Type: sb.authorType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: instrument("getAuthorById", func(p graphql.ResolveParams) (interface{}, error) {
				return r.Authors.GetByID(p.Context, argUint(p, "id"))
			}),
		},
		"getAllBuyers": &graphql.Field{
			Type: graphql.NewList(sb.buyerType),
			Resolve: instrument("getAllBuyers", func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := requireRole(p.Context, user.RoleManager); err != nil {
					return nil, err
				}
				return r.Buyers.ListAll(p.Context)
			}),
		},
		"getBuyerById": &graphql.Field{
			Type: sb.buyerType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: instrument("getBuyerById", func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := requireRole(p.Context, user.RoleManager); err != nil {
					return nil, err
				}
				return r.Buyers.GetByID(p.Context, argUint(p, "id"))
			}),
		},
		"me": &graphql.Field{
			Type: sb.buyerType,
			Resolve: instrument("me", func(p graphql.ResolveParams) (interface{}, error) {
				claims, err := requireRole(p.Context, user.RoleBuyer)
				if err != nil {
					return nil, err
				}
				return r.Buyers.GetByUserID(p.Context, claims.UserID)
			}),
		},
		"getAllEmployees": &graphql.Field{
			Type: graphql.NewList(sb.employeeType),
			Resolve: instrument("getAllEmployees", func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := requireRole(p.Context, user.RoleManager); err != nil {
					return nil, err
				}
				return r.Employees.ListAll(p.Context)
			}),
		},
		"getEmployeeById": &graphql.Field{
			Type: sb.employeeType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: instrument("getEmployeeById", func(p graphql.ResolveParams) (interface{}, error) {
				if _, err := requireRole(p.Context, user.RoleManager); err != nil {
					return nil, err
				}
				return r.Employees.GetByID(p.Context, argUint(p, "id"))
			}),
		},
		"averageRating": &graphql.Field{
			Type: graphql.Float,
			Args: graphql.FieldConfigArgument{
				"bookId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: instrument("averageRating", func(p graphql.ResolveParams) (interface{}, error) {
				return r.Rate.Average(p.Context, argUint(p, "bookId"))
			}),
		},
	}
}

func (sb *schemaBuilder) mutationFields() graphql.Fields {
	fields := graphql.Fields{}
	sb.bookMutations(fields)
	sb.authorMutations(fields)
	sb.buyerMutations(fields)
	sb.employeeMutations(fields)
	sb.addressMutations(fields)
	sb.ratingMutations(fields)
	sb.authMutations(fields)
	return fields
}

func (sb *schemaBuilder) bookMutations(fields graphql.Fields) {
	r := sb.r

	fields["createBook"] = &graphql.Field{
		Type: sb.bookType,
		Args: graphql.FieldConfigArgument{
			"title":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"publishedDate": &graphql.ArgumentConfig{Type: graphql.String},
			"category":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(sb.categoryEnum)},
			"stock":         &graphql.ArgumentConfig{Type: graphql.Int},
			"price":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			"introduction":  &graphql.ArgumentConfig{Type: graphql.String},
			"tags":          &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"authorId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: instrument("createBook", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}

			params := book.CreateParams{
				Title:    argString(p, "title"),
				Category: argCategory(p, "category"),
				Price:    unitsToCents(p.Args["price"].(float64)),
				AuthorID: argUint(p, "authorId"),
			}
			if v := optString(p, "publishedDate"); v != nil {
				params.PublishedDate = *v
			}
			if v := optInt(p, "stock"); v != nil {
				params.Stock = *v
			}
			if v := optString(p, "introduction"); v != nil {
				params.Introduction = *v
			}
			params.Tags = argStrings(p, "tags")

			return r.Catalog.Create(p.Context, params)
		}),
	}

	fields["updateBook"] = &graphql.Field{
		Type: sb.bookType,
		Args: graphql.FieldConfigArgument{
			"id":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"title":         &graphql.ArgumentConfig{Type: graphql.String},
			"publishedDate": &graphql.ArgumentConfig{Type: graphql.String},
			"category":      &graphql.ArgumentConfig{Type: sb.categoryEnum},
			"stock":         &graphql.ArgumentConfig{Type: graphql.Int},
			"price":         &graphql.ArgumentConfig{Type: graphql.Float},
			"introduction":  &graphql.ArgumentConfig{Type: graphql.String},
			"tags":          &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
			"authorId":      &graphql.ArgumentConfig{Type: graphql.Int},
		},
		Resolve: instrument("updateBook", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}

			params := book.UpdateParams{
				Title:         optString(p, "title"),
				PublishedDate: optString(p, "publishedDate"),
				Stock:         optInt(p, "stock"),
				Introduction:  optString(p, "introduction"),
				Tags:          argStrings(p, "tags"),
			}
			if c, ok := p.Args["category"].(book.Category); ok {
				params.Category = &c
			}
			if v := optFloat(p, "price"); v != nil {
				cents := unitsToCents(*v)
				params.Price = &cents
			}
			if v := optInt(p, "authorId"); v != nil {
				id := uint(*v)
				params.AuthorID = &id
			}

			return r.Catalog.Update(p.Context, argUint(p, "id"), params)
		}),
	}

	fields["deleteBook"] = &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: instrument("deleteBook", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}
			if err := r.Catalog.Delete(p.Context, argUint(p, "id")); err != nil {
				return nil, err
			}
			return true, nil
		}),
	}
}

func (sb *schemaBuilder) authorMutations(fields graphql.Fields) {
	r := sb.r

	fields["createAuthor"] = &graphql.Field{
		Type: sb.authorType,
		Args: graphql.FieldConfigArgument{
			"name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"birth":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"categories": &graphql.ArgumentConfig{Type: graphql.NewList(sb.categoryEnum)},
		},
		Resolve: instrument("createAuthor", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}
			birth, err := parseDate(argString(p, "birth"))
			if err != nil {
				return nil, err
			}
			return r.Authors.Create(p.Context, argString(p, "name"), birth, argCategories(p, "categories"))
		}),
	}

	fields["updateAuthor"] = &graphql.Field{
		Type: sb.authorType,
		Args: graphql.FieldConfigArgument{
			"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"name":       &graphql.ArgumentConfig{Type: graphql.String},
			"birth":      &graphql.ArgumentConfig{Type: graphql.String},
			"categories": &graphql.ArgumentConfig{Type: graphql.NewList(sb.categoryEnum)},
		},
		Resolve: instrument("updateAuthor", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}

			var birth *time.Time
			if v := optString(p, "birth"); v != nil {
				parsed, err := parseDate(*v)
				if err != nil {
					return nil, err
				}
				birth = &parsed
			}
			return r.Authors.Update(p.Context, argUint(p, "id"),
				optString(p, "name"), birth, argCategories(p, "categories"))
		}),
	}

	fields["deleteAuthor"] = &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: instrument("deleteAuthor", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}
			if err := r.Authors.Delete(p.Context, argUint(p, "id")); err != nil {
				return nil, err
			}
			return true, nil
		}),
	}
}

func (sb *schemaBuilder) buyerMutations(fields graphql.Fields) {
	r := sb.r

	fields["createBuyer"] = &graphql.Field{
		Type: sb.registerPayload,
		Args: graphql.FieldConfigArgument{
			"email":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"firstName":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastName":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"phoneNumber": &graphql.ArgumentConfig{Type: graphql.String},
			"birth":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"wallet":      &graphql.ArgumentConfig{Type: graphql.Float},
		},
		Resolve: instrument("createBuyer", func(p graphql.ResolveParams) (interface{}, error) {
			birth, err := parseDate(argString(p, "birth"))
			if err != nil {
				return nil, err
			}

			req := appuser.RegisterRequest{
				Email:     argString(p, "email"),
				Password:  argString(p, "password"),
				Role:      user.RoleBuyer,
				FirstName: argString(p, "firstName"),
				LastName:  argString(p, "lastName"),
				Birth:     birth,
			}
			if v := optString(p, "phoneNumber"); v != nil {
				req.Phone = *v
			}
			if v := optFloat(p, "wallet"); v != nil {
				req.Wallet = unitsToCents(*v)
			}
			return r.Register.Execute(p.Context, req)
		}),
	}

	fields["updateBuyer"] = &graphql.Field{
		Type: sb.buyerType,
		Args: graphql.FieldConfigArgument{
			"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"firstName":   &graphql.ArgumentConfig{Type: graphql.String},
			"lastName":    &graphql.ArgumentConfig{Type: graphql.String},
			"email":       &graphql.ArgumentConfig{Type: graphql.String},
			"phoneNumber": &graphql.ArgumentConfig{Type: graphql.String},
			"birth":       &graphql.ArgumentConfig{Type: graphql.String},
			"wallet":      &graphql.ArgumentConfig{Type: graphql.Float},
		},
		Resolve: instrument("updateBuyer", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}

			params := buyer.UpdateParams{
				FirstName:   optString(p, "firstName"),
				LastName:    optString(p, "lastName"),
				Email:       optString(p, "email"),
				PhoneNumber: optString(p, "phoneNumber"),
			}
			if v := optString(p, "birth"); v != nil {
				parsed, err := parseDate(*v)
				if err != nil {
					return nil, err
				}
				params.Birth = &parsed
			}
			if v := optFloat(p, "wallet"); v != nil {
				cents := unitsToCents(*v)
				params.Wallet = &cents
			}
			return r.Buyers.Update(p.Context, argUint(p, "id"), params)
		}),
	}

	fields["deleteBuyer"] = &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: instrument("deleteBuyer", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}
			if err := r.Buyers.Delete(p.Context, argUint(p, "id")); err != nil {
				return nil, err
			}
			return true, nil
		}),
	}

	fields["purchaseBook"] = &graphql.Field{
		Type: sb.buyerType,
		Args: graphql.FieldConfigArgument{
			"bookId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: instrument("purchaseBook", func(p graphql.ResolveParams) (interface{}, error) {
			claims, err := requireRole(p.Context, user.RoleBuyer)
			if err != nil {
				return nil, err
			}
			b, err := r.Buyers.GetByUserID(p.Context, claims.UserID)
			if err != nil {
				return nil, err
			}
			return r.Purchase.Execute(p.Context, b.ID, argUint(p, "bookId"))
		}),
	}

	fields["addToWishlist"] = &graphql.Field{
		Type: sb.buyerType,
		Args: graphql.FieldConfigArgument{
			"bookId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: instrument("addToWishlist", func(p graphql.ResolveParams) (interface{}, error) {
			claims, err := requireRole(p.Context, user.RoleBuyer)
			if err != nil {
				return nil, err
			}
			b, err := r.Buyers.GetByUserID(p.Context, claims.UserID)
			if err != nil {
				return nil, err
			}
			return r.Wishlist.Execute(p.Context, b.ID, argUint(p, "bookId"))
		}),
	}
}

func (sb *schemaBuilder) employeeMutations(fields graphql.Fields) {
	r := sb.r

	fields["createEmployee"] = &graphql.Field{
		Type: sb.employeeType,
		Args: graphql.FieldConfigArgument{
			"firstName":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastName":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"emailAddress": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"role":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(sb.employeeRoleEnum)},
			"bossId":       &graphql.ArgumentConfig{Type: graphql.Int},
		},
		Resolve: instrument("createEmployee", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}

			params := employee.CreateParams{
				FirstName: argString(p, "firstName"),
				LastName:  argString(p, "lastName"),
				Email:     argString(p, "emailAddress"),
				Role:      argEmployeeRole(p, "role"),
			}
			if v := optInt(p, "bossId"); v != nil {
				params.BossID = uint(*v)
			}
			return r.Employees.Create(p.Context, params)
		}),
	}

	fields["updateEmployee"] = &graphql.Field{
		Type: sb.employeeType,
		Args: graphql.FieldConfigArgument{
			"id":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"firstName":    &graphql.ArgumentConfig{Type: graphql.String},
			"lastName":     &graphql.ArgumentConfig{Type: graphql.String},
			"emailAddress": &graphql.ArgumentConfig{Type: graphql.String},
			"role":         &graphql.ArgumentConfig{Type: sb.employeeRoleEnum},
			"bossId":       &graphql.ArgumentConfig{Type: graphql.Int},
		},
		Resolve: instrument("updateEmployee", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}

			params := employee.UpdateParams{
				FirstName: optString(p, "firstName"),
				LastName:  optString(p, "lastName"),
				Email:     optString(p, "emailAddress"),
			}
			if role, ok := p.Args["role"].(employee.Role); ok {
				params.Role = &role
			}
			if v := optInt(p, "bossId"); v != nil {
				id := uint(*v)
				params.BossID = &id
			}
			return r.Employees.Update(p.Context, argUint(p, "id"), params)
		}),
	}

	fields["deleteEmployee"] = &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: instrument("deleteEmployee", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireRole(p.Context, user.RoleManager); err != nil {
				return nil, err
			}
			if err := r.Employees.Delete(p.Context, argUint(p, "id")); err != nil {
				return nil, err
			}
			return true, nil
		}),
	}
}

func (sb *schemaBuilder) addressMutations(fields graphql.Fields) {
	r := sb.r

	fields["createAddress"] = &graphql.Field{
		Type: sb.addressType,
		Args: graphql.FieldConfigArgument{
			"streetLine1":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"streetLine2":            &graphql.ArgumentConfig{Type: graphql.String},
			"city":                   &graphql.ArgumentConfig{Type: graphql.String},
			"province":               &graphql.ArgumentConfig{Type: graphql.String},
			"postalCode":             &graphql.ArgumentConfig{Type: graphql.String},
			"phoneNumber":            &graphql.ArgumentConfig{Type: graphql.String},
			"defaultShippingAddress": &graphql.ArgumentConfig{Type: graphql.Boolean},
			"defaultBillingAddress":  &graphql.ArgumentConfig{Type: graphql.Boolean},
		},
		Resolve: instrument("createAddress", func(p graphql.ResolveParams) (interface{}, error) {
			claims, err := requireRole(p.Context, user.RoleBuyer)
			if err != nil {
				return nil, err
			}
			b, err := r.Buyers.GetByUserID(p.Context, claims.UserID)
			if err != nil {
				return nil, err
			}

			params := address.CreateParams{
				StreetLine1: argString(p, "streetLine1"),
				BuyerID:     b.ID,
			}
			if v := optString(p, "streetLine2"); v != nil {
				params.StreetLine2 = *v
			}
			if v := optString(p, "city"); v != nil {
				params.City = *v
			}
			if v := optString(p, "province"); v != nil {
				params.Province = *v
			}
			if v := optString(p, "postalCode"); v != nil {
				params.PostalCode = *v
			}
			if v := optString(p, "phoneNumber"); v != nil {
				params.PhoneNumber = *v
			}
			if v := optBool(p, "defaultShippingAddress"); v != nil {
				params.DefaultShippingAddress = *v
			}
			if v := optBool(p, "defaultBillingAddress"); v != nil {
				params.DefaultBillingAddress = *v
			}
			return r.Addresses.Create(p.Context, params)
		}),
	}

	fields["updateAddress"] = &graphql.Field{
		Type: sb.addressType,
		Args: graphql.FieldConfigArgument{
			"id":                     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"streetLine1":            &graphql.ArgumentConfig{Type: graphql.String},
			"streetLine2":            &graphql.ArgumentConfig{Type: graphql.String},
			"city":                   &graphql.ArgumentConfig{Type: graphql.String},
			"province":               &graphql.ArgumentConfig{Type: graphql.String},
			"postalCode":             &graphql.ArgumentConfig{Type: graphql.String},
			"phoneNumber":            &graphql.ArgumentConfig{Type: graphql.String},
			"defaultShippingAddress": &graphql.ArgumentConfig{Type: graphql.Boolean},
			"defaultBillingAddress":  &graphql.ArgumentConfig{Type: graphql.Boolean},
		},
		Resolve: instrument("updateAddress", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireAuth(p.Context); err != nil {
				return nil, err
			}

			params := address.UpdateParams{
				StreetLine1:            optString(p, "streetLine1"),
				StreetLine2:            optString(p, "streetLine2"),
				City:                   optString(p, "city"),
				Province:               optString(p, "province"),
				PostalCode:             optString(p, "postalCode"),
				PhoneNumber:            optString(p, "phoneNumber"),
				DefaultShippingAddress: optBool(p, "defaultShippingAddress"),
				DefaultBillingAddress:  optBool(p, "defaultBillingAddress"),
			}
			return r.Addresses.Update(p.Context, argUint(p, "id"), params)
		}),
	}

	fields["deleteAddress"] = &graphql.Field{
		Type: graphql.Boolean,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: instrument("deleteAddress", func(p graphql.ResolveParams) (interface{}, error) {
			if _, err := requireAuth(p.Context); err != nil {
				return nil, err
			}
			if err := r.Addresses.Delete(p.Context, argUint(p, "id")); err != nil {
				return nil, err
			}
			return true, nil
		}),
	}
}

func (sb *schemaBuilder) ratingMutations(fields graphql.Fields) {
	r := sb.r

	fields["createRating"] = &graphql.Field{
		Type: sb.ratingType,
		Args: graphql.FieldConfigArgument{
			"bookId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"value":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			"review": &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: instrument("createRating", func(p graphql.ResolveParams) (interface{}, error) {
			claims, err := requireAuth(p.Context)
			if err != nil {
				return nil, err
			}

			review := ""
			if v := optString(p, "review"); v != nil {
				review = *v
			}
			return r.Rate.Create(p.Context, claims.UserID, argUint(p, "bookId"),
				p.Args["value"].(float64), review)
		}),
	}

	fields["updateRating"] = &graphql.Field{
		Type: sb.ratingType,
		Args: graphql.FieldConfigArgument{
			"bookId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			"value":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			"review": &graphql.ArgumentConfig{Type: graphql.String},
		},
		Resolve: instrument("updateRating", func(p graphql.ResolveParams) (interface{}, error) {
			claims, err := requireAuth(p.Context)
			if err != nil {
				return nil, err
			}

			review := ""
			if v := optString(p, "review"); v != nil {
				review = *v
			}
			return r.Rate.Update(p.Context, claims.UserID, argUint(p, "bookId"),
				p.Args["value"].(float64), review)
		}),
	}
}

func (sb *schemaBuilder) authMutations(fields graphql.Fields) {
	r := sb.r

	fields["login"] = &graphql.Field{
		Type: sb.loginPayload,
		Args: graphql.FieldConfigArgument{
			"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
		},
		Resolve: instrument("login", func(p graphql.ResolveParams) (interface{}, error) {
			return r.Login.Execute(p.Context, appuser.LoginRequest{
				Email:    argString(p, "email"),
				Password: argString(p, "password"),
			})
		}),
	}

	fields["logout"] = &graphql.Field{
		Type: graphql.Boolean,
		Resolve: instrument("logout", func(p graphql.ResolveParams) (interface{}, error) {
			claims, err := requireAuth(p.Context)
			if err != nil {
				return nil, err
			}
			token, _ := TokenFrom(p.Context)
			if err := r.Logout.Execute(p.Context, claims.UserID, token); err != nil {
				return nil, err
			}
			return true, nil
		}),
	}
}

// argCategory reads a required Category enum argument.
func argCategory(p graphql.ResolveParams, name string) book.Category {
	v, _ := p.Args[name].(book.Category)
	return v
}

// argCategories reads an optional [Category] argument.
func argCategories(p graphql.ResolveParams, name string) []book.Category {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	categories := make([]book.Category, 0, len(raw))
	for _, item := range raw {
		if c, ok := item.(book.Category); ok {
			categories = append(categories, c)
		}
	}
	return categories
}

// argStrings reads an optional [String] argument.
func argStrings(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func argEmployeeRole(p graphql.ResolveParams, name string) employee.Role {
	v, _ := p.Args[name].(employee.Role)
	return v
}
