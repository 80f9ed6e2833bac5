package analysis

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"accessibility-backend/internal/llm"
	"accessibility-backend/internal/personas"
	"accessibility-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/disability-types", h.listDisabilityTypes)
	rg.POST("/analyze", h.analyze)
	rg.GET("/css/:disabilityType", h.getCSS)
	rg.GET("/react/:disabilityType", h.getReact)
}

type analyzeRequest struct {
	DisabilityType string `json:"disability_type"`
}

func (h *Handler) listDisabilityTypes(c *gin.Context) {
	categories := personas.All()
	types := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		types = append(types, gin.H{
			"value": string(cat),
			"name":  cat.DisplayName(),
		})
	}
	respond.OK(c, gin.H{"disability_types": types})
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be JSON with disability_type", nil)
		return
	}

	category, ok := h.parseCategory(c, req.DisabilityType)
	if !ok {
		return
	}

	profile, ok := h.runAnalysis(c, category)
	if !ok {
		return
	}

	respond.OK(c, gin.H{
		"disability_type":     string(profile.DisabilityType),
		"css_modifications":   GenerateCSS(profile),
		"react_modifications": GenerateReact(profile),
		"summary":             profile.Summary,
	})
}

func (h *Handler) getCSS(c *gin.Context) {
	category, ok := h.parseCategory(c, c.Param("disabilityType"))
	if !ok {
		return
	}

	profile, ok := h.runAnalysis(c, category)
	if !ok {
		return
	}

	respond.OK(c, gin.H{
		"disability_type": string(category),
		"css":             GenerateCSS(profile),
		"css_class":       category.ClassName(),
	})
}

func (h *Handler) getReact(c *gin.Context) {
	category, ok := h.parseCategory(c, c.Param("disabilityType"))
	if !ok {
		return
	}

	profile, ok := h.runAnalysis(c, category)
	if !ok {
		return
	}

	respond.OK(c, gin.H{
		"disability_type": string(category),
		"modifications":   GenerateReact(profile),
	})
}

// parseCategory validates the raw value before any analysis work happens.
// Invalid input never reaches the LLM gateway.
func (h *Handler) parseCategory(c *gin.Context, raw string) (personas.Category, bool) {
	category, err := personas.Parse(raw)
	if err != nil {
		message := fmt.Sprintf("Invalid disability type: %s. Valid types: %s", raw, personas.ValidValues())
		respond.Error(c, http.StatusBadRequest, "validation_error", message, nil)
		return "", false
	}
	c.Set("disabilityType", string(category))
	return category, true
}

func (h *Handler) runAnalysis(c *gin.Context, category personas.Category) (Profile, bool) {
	profile, err := h.Svc.Analyze(c.Request.Context(), category)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "not_configured", "OPENAI_API_KEY environment variable not set", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
		}
		return Profile{}, false
	}
	return profile, true
}
