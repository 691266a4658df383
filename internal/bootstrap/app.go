package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"

	"resumegen-backend/internal/analyses"
	"resumegen-backend/internal/documents"
	"resumegen-backend/internal/llm"
	"resumegen-backend/internal/llm/claude"
	"resumegen-backend/internal/resumes"
	"resumegen-backend/internal/shared/config"
	"resumegen-backend/internal/shared/server"
	"resumegen-backend/internal/shared/storage/dynamo"
	"resumegen-backend/internal/users"
)

// App holds the explicitly constructed dependency graph. Lifecycle is owned
// by the process entry point; nothing here is a package-level singleton.
type App struct {
	Config config.Config
	Router *gin.Engine

	Dynamo *dynamodb.Client

	UsersRepo     users.Repo
	DocumentsRepo documents.Repo
	AnalysesRepo  analyses.Repo
	ResumesRepo   resumes.Repo

	LLM llm.Client

	UsersService     *users.Service
	DocumentsService *documents.Service
	AnalysesService  *analyses.Service
	ResumesService   *resumes.Service
}

// Option adjusts the App before services and routes are wired; tests use it
// to inject fakes.
type Option func(*App)

// WithLLM overrides the generation client.
func WithLLM(client llm.Client) Option {
	return func(a *App) { a.LLM = client }
}

// WithDocumentsRepo overrides the documents repository.
func WithDocumentsRepo(repo documents.Repo) Option {
	return func(a *App) { a.DocumentsRepo = repo }
}

// Build prepares the dependency graph and the router.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	secret, err := resolveSecret(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg}

	if err := buildRepos(app); err != nil {
		return nil, err
	}

	if cfg.AnthropicAPIKey != "" {
		app.LLM = claude.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.Language)
	} else {
		if !isDevLike(cfg.Env) {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
		log.Printf("bootstrap: ANTHROPIC_API_KEY empty; generation endpoints will report unavailable")
		app.LLM = llm.UnavailableClient{}
	}

	for _, opt := range opts {
		opt(app)
	}

	app.UsersService = &users.Service{Repo: app.UsersRepo, JWTSecret: secret}
	app.DocumentsService = &documents.Service{Repo: app.DocumentsRepo}
	app.AnalysesService = &analyses.Service{Repo: app.AnalysesRepo, DocRepo: app.DocumentsRepo, LLM: app.LLM}
	app.ResumesService = &resumes.Service{Repo: app.ResumesRepo, DocRepo: app.DocumentsRepo, LLM: app.LLM}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		JWTSecret:        secret,
		UsersHandler:     users.NewHandler(app.UsersService),
		DocumentsHandler: documents.NewHandler(app.DocumentsService),
		AnalysesHandler:  analyses.NewHandler(app.AnalysesService),
		ResumesHandler:   resumes.NewHandler(app.ResumesService),
	})

	return app, nil
}

func buildRepos(app *App) error {
	cfg := app.Config
	if !cfg.HasDynamo() {
		if !isDevLike(cfg.Env) {
			return fmt.Errorf("USERS_TABLE, DOCUMENTS_TABLE, ANALYSES_TABLE and RESUMES_TABLE are required")
		}
		log.Printf("bootstrap: DynamoDB tables not configured; using in-memory repositories")
		app.UsersRepo = users.NewMemoryRepo()
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.AnalysesRepo = analyses.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
		return nil
	}

	client, err := dynamo.NewClient(context.Background(), cfg.AWSRegion, cfg.DynamoEndpoint)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DynamoDB client failed; using in-memory repositories: %v", err)
			app.UsersRepo = users.NewMemoryRepo()
			app.DocumentsRepo = documents.NewMemoryRepo()
			app.AnalysesRepo = analyses.NewMemoryRepo()
			app.ResumesRepo = resumes.NewMemoryRepo()
			return nil
		}
		return err
	}

	app.Dynamo = client
	app.UsersRepo = &users.DynamoRepo{Client: client, Table: cfg.UsersTable}
	app.DocumentsRepo = &documents.DynamoRepo{Client: client, Table: cfg.DocumentsTable}
	app.AnalysesRepo = &analyses.DynamoRepo{Client: client, Table: cfg.AnalysesTable}
	app.ResumesRepo = &resumes.DynamoRepo{Client: client, Table: cfg.ResumesTable}
	return nil
}

func resolveSecret(cfg config.Config) ([]byte, error) {
	secret := strings.TrimSpace(cfg.JWTSecret)
	if secret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		secret = "dev-secret"
	}
	return []byte(secret), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
