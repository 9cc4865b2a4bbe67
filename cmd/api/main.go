package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"chillgamer/internal/adapter/api"
	"chillgamer/internal/adapter/api/handler"
	apimiddleware "chillgamer/internal/adapter/api/middleware"
	"chillgamer/internal/adapter/api/router"
	"chillgamer/internal/adapter/repository"
	"chillgamer/internal/infrastructure/monitoring"
	"chillgamer/internal/usecase"
	"chillgamer/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production), file path
	// (local development), or application default credentials.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	} else {
		log.Printf("Using application default credentials")
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Establish the store connection once at startup; a process that
	// cannot reach the store cannot serve.
	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	gameRepo := repository.NewFirestoreGameRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	watchlistRepo := repository.NewFirestoreWatchlistRepository(firestoreClient)
	statsRepo := repository.NewFirestoreStatsRepository(firestoreClient)

	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	gameUseCase := usecase.NewGameUseCase(gameRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	watchlistUseCase := usecase.NewWatchlistUseCase(watchlistRepo)
	statsUseCase := usecase.NewStatsUseCase(statsRepo)

	handler.Setup(reviewUseCase, gameUseCase, userUseCase, watchlistUseCase, statsUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(monitoring.Middleware())

	timeoutMiddleware := apimiddleware.NewTimeoutMiddleware(cfg.RequestTimeout)
	e.Use(timeoutMiddleware.Bound)

	e.Validator = api.NewValidator()

	router.Setup(e)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
