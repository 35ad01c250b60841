package main

import (
	"context"
	"fmt"
	"log"

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
	"github.com/fictus/bookstore/pkg/logger"
	"github.com/fictus/bookstore/pkg/mq"
	"github.com/fictus/bookstore/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	serviceName := cfg.Otel.ServiceName
	if serviceName == "" {
		serviceName = "bookstore-api"
	}
	shutdownTracing, err := tracing.Init(serviceName, cfg.Otel.Endpoint)
	if err != nil {
		logger.L.Fatalw("failed to init tracing", "error", err)
	}
	defer shutdownTracing(context.Background())

	db, err := mysql.NewDB(cfg)
	if err != nil {
		logger.L.Fatalw("failed to init database", "error", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.L.Fatalw("failed to init redis", "error", err)
	}

	// The broker is optional; without it purchases simply emit no events.
	var events apppurchase.EventPublisher
	if cfg.AMQP.URL != "" {
		publisher, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			logger.L.Fatalw("failed to init event publisher", "error", err)
		}
		defer publisher.Close()
		events = publisher
	}

	// Repositories and stores.
	userRepo := mysql.NewUserRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	buyerRepo := mysql.NewBuyerRepository(db)
	employeeRepo := mysql.NewEmployeeRepository(db)
	addressRepo := mysql.NewAddressRepository(db)
	ratingRepo := mysql.NewRatingRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	similarCache := redis.NewSimilarCache(redisClient, cfg.Redis.SimilarTTL)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)

	// Domain services.
	userService := user.NewService(userRepo)
	authorService := author.NewService(authorRepo)
	bookService := book.NewService(bookRepo)
	buyerService := buyer.NewService(buyerRepo)
	employeeService := employee.NewService(employeeRepo)
	addressService := address.NewService(addressRepo)
	ratingService := rating.NewService(ratingRepo)

	// Application use cases.
	resolvers := &gql.Resolvers{
		Books:     bookService,
		Authors:   authorService,
		Buyers:    buyerService,
		Employees: employeeService,
		Ratings:   ratingService,
		BookRepo:  bookRepo,
		BuyerRepo: buyerRepo,
		Catalog:   appbook.NewCatalogUseCase(bookService, authorRepo, similarCache),
		Purchase:  apppurchase.NewUseCase(buyerRepo, bookRepo, txManager, events),
		Wishlist:  apppurchase.NewWishlistUseCase(buyerRepo, bookRepo),
		Similar:   appsimilarity.NewFindSimilarUseCase(bookRepo, similarCache),
		Addresses: appaddress.NewUseCase(addressService, buyerRepo),
		Rate:      apprating.NewUseCase(ratingService, bookRepo, userRepo),
		Register:  appuser.NewRegisterUseCase(userService, buyerService, txManager),
		Login:     appuser.NewLoginUseCase(userService, jwtManager, sessionStore),
		Logout:    appuser.NewLogoutUseCase(sessionStore),
	}

	schema, err := gql.NewSchema(resolvers)
	if err != nil {
		logger.L.Fatalw("failed to build schema", "error", err)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)
	router := httpiface.NewRouter(cfg, schema, authMiddleware)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.L.Infow("server starting",
		"addr", addr,
		"mode", cfg.Server.Mode,
		"graphql", "/graphql",
		"metrics", "/metrics",
	)

	if err := router.Run(addr); err != nil {
		logger.L.Fatalw("server exited", "error", err)
	}
}
