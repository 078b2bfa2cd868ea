package connection

import (
	"context"
	"fmt"
	"os"

	"opsboard/services"
	"opsboard/store"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

// App bundles the managed-service collaborators every controller works with:
// the document store, the object storage, the mailer, and the in-memory
// collection mirror.
type App struct {
	Firestore *firestore.Client
	Storage   services.ObjectStorage
	Mailer    services.Mailer
	Store     *store.Store
}

func NewApp() (*App, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load") // Use only in dev
	}

	serviceAccountKeyPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if serviceAccountKeyPath == "" {
		return nil, fmt.Errorf("environment variable GOOGLE_APPLICATION_CREDENTIALS is not set")
	}

	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountKeyPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	storageClient, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountKeyPath))
	if err != nil {
		return nil, fmt.Errorf("error getting Storage client: %w", err)
	}

	fmt.Println("Firestore connection successful")
	return &App{
		Firestore: firestoreClient,
		Storage:   services.NewCloudStorage(storageClient),
		Mailer:    services.SMTPMailer{},
		Store:     store.New(),
	}, nil
}
