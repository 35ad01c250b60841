//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appaddress "github.com/fictus/bookstore/internal/application/address"
	appbook "github.com/fictus/bookstore/internal/application/book"
	apppurchase "github.com/fictus/bookstore/internal/application/purchase"
	apprating "github.com/fictus/bookstore/internal/application/rating"
	appsimilarity "github.com/fictus/bookstore/internal/application/similarity"
	appuser "github.com/fictus/bookstore/internal/application/user"
	"github.com/fictus/bookstore/internal/domain/address"
	"github.com/fictus/bookstore/internal/domain/author"
	"github.com/fictus/bookstore/internal/domain/book"
	"github.com/fictus/bookstore/internal/domain/buyer"
	"github.com/fictus/bookstore/internal/domain/employee"
	"github.com/fictus/bookstore/internal/domain/rating"
	"github.com/fictus/bookstore/internal/domain/user"
	"github.com/fictus/bookstore/internal/infrastructure/config"
	"github.com/fictus/bookstore/internal/infrastructure/persistence/mysql"
	"github.com/fictus/bookstore/internal/infrastructure/persistence/redis"
	gql "github.com/fictus/bookstore/internal/interface/graphql"
	httpiface "github.com/fictus/bookstore/internal/interface/http"
	"github.com/fictus/bookstore/internal/interface/http/middleware"
	"github.com/fictus/bookstore/pkg/jwt"
	"github.com/fictus/bookstore/pkg/mq"
)

var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewAuthorRepository,
	mysql.NewBookRepository,
	mysql.NewBuyerRepository,
	mysql.NewEmployeeRepository,
	mysql.NewAddressRepository,
	mysql.NewRatingRepository,
	mysql.NewTxManager,
	wire.Bind(new(apppurchase.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appuser.TxManager), new(*mysql.TxManager)),
)

var domainSet = wire.NewSet(
	user.NewService,
	author.NewService,
	book.NewService,
	buyer.NewService,
	employee.NewService,
	address.NewService,
	rating.NewService,
)

var applicationSet = wire.NewSet(
	appbook.NewCatalogUseCase,
	apppurchase.NewUseCase,
	apppurchase.NewWishlistUseCase,
	appsimilarity.NewFindSimilarUseCase,
	appaddress.NewUseCase,
	apprating.NewUseCase,
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
)

var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

var graphqlSet = wire.NewSet(
	wire.Struct(new(gql.Resolvers), "*"),
	gql.NewSchema,
)

// jwt.NewManager takes scalar config values, so wire needs a hand-written
// provider to pull them out of Config.
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

func provideSimilarCache(client *goredis.Client, cfg *config.Config) *redis.SimilarCache {
	return redis.NewSimilarCache(client, cfg.Redis.SimilarTTL)
}

// An empty AMQP URL disables event publishing; purchases then run without a broker.
func provideEventPublisher(cfg *config.Config) (apppurchase.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		return nil, nil
	}
	return mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
}

func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		graphqlSet,

		provideSimilarCache,
		wire.Bind(new(appsimilarity.Cache), new(*redis.SimilarCache)),
		provideEventPublisher,

		httpiface.NewRouter,
	)
	return nil, nil
}
