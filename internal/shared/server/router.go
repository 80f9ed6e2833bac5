package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"accessibility-backend/internal/analysis"
	"accessibility-backend/internal/llm"
	"accessibility-backend/internal/llm/openai"
	"accessibility-backend/internal/reports"
	"accessibility-backend/internal/services/health"
	"accessibility-backend/internal/shared/config"
	"accessibility-backend/internal/shared/server/middleware"
	"accessibility-backend/internal/shared/server/respond"
)

const analyzeRateGroup = "ANALYZE"

// NewRouter constructs the Gin engine with middleware and routes registered.
// All dependencies are created here at startup and shared read-only across
// requests.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				analyzeRateGroup: {Rate: 1, Burst: 5},
			},
			GroupFor: analyzeGroupFor,
		}),
	)

	llmClient := buildLLMClient(cfg)

	var reportStore *reports.Store
	if strings.TrimSpace(cfg.ReportsDir) != "" {
		reportStore = reports.New(cfg.ReportsDir)
	}

	analysisSvc := &analysis.Service{LLM: llmClient, Reports: reportStore}
	analysisHandler := analysis.NewHandler(analysisSvc)
	healthSvc := health.NewService(cfg.OpenAIAPIKey)

	root := r.Group("/")
	root.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"message": "UI Accessibility Analyzer API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"analyze":          "/analyze",
				"css":              "/css/{disability_type}",
				"react":            "/react/{disability_type}",
				"disability_types": "/disability-types",
				"health":           "/health",
			},
		})
	})
	root.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	analysisHandler.RegisterRoutes(root)

	return r
}

// buildLLMClient wires the configured provider, falling back to the
// placeholder so the transport still starts without a credential.
func buildLLMClient(cfg config.Config) llm.Client {
	if cfg.LLMProvider != "openai" {
		log.Printf("unknown LLM provider %q; analysis unavailable", cfg.LLMProvider)
		return llm.PlaceholderClient{}
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Printf("openai client unavailable: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
}

// analyzeGroupFor rate-limits every route that triggers an upstream LLM call.
func analyzeGroupFor(c *gin.Context) string {
	path := c.Request.URL.Path
	if path == "/analyze" || strings.HasPrefix(path, "/css/") || strings.HasPrefix(path, "/react/") {
		return analyzeRateGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
