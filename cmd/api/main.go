package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"github.com/harshverma27/Kissan-Connect/internal/adapter/api"
	"github.com/harshverma27/Kissan-Connect/internal/adapter/api/handler"
	apimiddleware "github.com/harshverma27/Kissan-Connect/internal/adapter/api/middleware"
	"github.com/harshverma27/Kissan-Connect/internal/adapter/api/router"
	"github.com/harshverma27/Kissan-Connect/internal/adapter/repository"
	"github.com/harshverma27/Kissan-Connect/internal/infrastructure/cache"
	"github.com/harshverma27/Kissan-Connect/internal/infrastructure/firebase"
	"github.com/harshverma27/Kissan-Connect/internal/infrastructure/storage"
	"github.com/harshverma27/Kissan-Connect/internal/infrastructure/websocket"
	"github.com/harshverma27/Kissan-Connect/internal/usecase"
	"github.com/harshverma27/Kissan-Connect/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Try to get service account from environment variable (for production)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		// Fallback to file path (for local development)
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./serviceAccountKey.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	nameCache := cache.NewProductNameCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer nameCache.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseAPIKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	productUseCase := usecase.NewProductUseCase(productRepo, userRepo, storageClient, nameCache)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, nameCache)
	earningsUseCase := usecase.NewEarningsUseCase(orderRepo, productRepo)

	handler.Setup(authUseCase, productUseCase, orderUseCase, earningsUseCase)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware)

	wsHandler := handler.NewWebSocketHandler(wsManager, orderUseCase, firebaseAuthClient)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
