package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	appControllers "github.com/opennotes/backend/internal/app/controllers"
	appRepos "github.com/opennotes/backend/internal/app/repositories"
	appRoutes "github.com/opennotes/backend/internal/app/routes"
	appServices "github.com/opennotes/backend/internal/app/services"
	"github.com/opennotes/backend/internal/config"
	appMiddleware "github.com/opennotes/backend/internal/middleware"
	"github.com/opennotes/backend/internal/pkg/blobstore"
	"github.com/opennotes/backend/internal/pkg/llm"
	"github.com/opennotes/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	NoteService            appServices.NoteService
	SubjectService         appServices.SubjectService
	ChatService            appServices.ChatService
	ApprovalService        appServices.ApprovalService
	SubscriptionService    appServices.SubscriptionService
	NoteController         *appControllers.NoteController
	SubjectController      *appControllers.SubjectController
	ChatController         *appControllers.ChatController
	ApprovalController     *appControllers.ApprovalController
	SubscriptionController *appControllers.SubscriptionController
	Repos                  *appRepos.Repositories
	BlobStore              *blobstore.GCSStore
	Completer              llm.Completer
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found, relying on environment variables")
	}

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	logger.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupFirestore creates the document-store client. A missing credentials
// file is only a warning here: the client can still pick up application
// default credentials in managed environments.
func SetupFirestore(ctx context.Context, cfg *config.Config) (*firestore.Client, error) {
	var opts []option.ClientOption
	if _, err := os.Stat(cfg.Firestore.CredentialsFile); err == nil {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
	} else {
		logger.Warn().Str("path", cfg.Firestore.CredentialsFile).Msg("Credentials file not found, document store will use application default credentials")
	}

	client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	logger.Info().Str("projectId", cfg.Firestore.ProjectID).Msg("Document store client initialized")
	return client, nil
}

// BuildDependencies wires repositories, services and controllers
func BuildDependencies(ctx context.Context, cfg *config.Config, fsClient *firestore.Client) (*Dependencies, error) {
	blobs, err := blobstore.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsFile, cfg.Storage.UploadTimeout)
	if err != nil {
		return nil, fmt.Errorf("setup blob storage: %w", err)
	}

	completer := llm.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)

	repos := appRepos.NewRepositories(fsClient)

	noteService := appServices.NewNoteService(repos.NoteRepository, blobs)
	subjectService := appServices.NewSubjectService(repos.SubjectRepository, repos.NoteRepository)
	chatService := appServices.NewChatService(repos.NoteRepository, completer)
	approvalService := appServices.NewApprovalService(repos.NoteRepository, repos.SubjectRepository)
	subscriptionService := appServices.NewSubscriptionService(repos.SubscriptionRepository)

	return &Dependencies{
		NoteService:            noteService,
		SubjectService:         subjectService,
		ChatService:            chatService,
		ApprovalService:        approvalService,
		SubscriptionService:    subscriptionService,
		NoteController:         appControllers.NewNoteController(noteService),
		SubjectController:      appControllers.NewSubjectController(subjectService),
		ChatController:         appControllers.NewChatController(chatService),
		ApprovalController:     appControllers.NewApprovalController(approvalService),
		SubscriptionController: appControllers.NewSubscriptionController(subscriptionService),
		Repos:                  repos,
		BlobStore:              blobs,
		Completer:              completer,
	}, nil
}

// SetupRouter creates the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(
		router,
		deps.NoteController,
		deps.SubjectController,
		deps.ChatController,
		deps.ApprovalController,
		deps.SubscriptionController,
	)

	return router
}
