package main

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"mobilicity/internal/adapter/api"
	"mobilicity/internal/adapter/api/handler"
	apimiddleware "mobilicity/internal/adapter/api/middleware"
	"mobilicity/internal/adapter/api/router"
	"mobilicity/internal/adapter/repository"
	"mobilicity/internal/domain/service"
	"mobilicity/internal/infrastructure/auth"
	"mobilicity/internal/usecase"
	"mobilicity/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}

	ctx := context.Background()

	// The store handle is created once, before any route is registered;
	// the process refuses to start without it.
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	firestoreClient, err := firestore.NewClient(ctx, cfg.GoogleProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	categoryRepo := repository.NewFirestoreCategoryRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	bookingRepo := repository.NewFirestoreBookingRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	gateway := service.NewCardGatewayService(cfg.GatewayKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, jwtManager)
	userUseCase := usecase.NewUserUseCase(userRepo)
	catalogUseCase := usecase.NewCatalogUseCase(categoryRepo, productRepo, userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, userRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, productRepo, userRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo, productRepo)
	settlementUseCase := usecase.NewSettlementUseCase(paymentRepo, bookingRepo, productRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		catalogUseCase,
		productUseCase,
		bookingUseCase,
		reportUseCase,
		settlementUseCase,
		gateway,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtManager)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
