package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZanderH-code/mtg-ai-backend/internal/models"
	"github.com/ZanderH-code/mtg-ai-backend/internal/services"
)

type ProviderHandler struct {
	translator *services.Translator
}

func NewProviderHandler(translator *services.Translator) *ProviderHandler {
	return &ProviderHandler{translator: translator}
}

// ListModels is GET /api/models. Configured providers are asked live; a
// provider that cannot be queried (or a deployment with no credentials at
// all) answers from the fixed default catalog.
func (h *ProviderHandler) ListModels(c *gin.Context) {
	catalog := map[string][]models.ModelInfo{}

	ambient := h.translator.AmbientProviders()
	if len(ambient) == 0 {
		for name, infos := range services.DefaultModelCatalog {
			catalog[name] = infos
		}
		c.JSON(http.StatusOK, gin.H{"models": catalog, "demo_mode": true})
		return
	}

	for _, provider := range ambient {
		infos, err := provider.ListModels(c.Request.Context())
		if err != nil || len(infos) == 0 {
			infos = services.DefaultModelCatalog[provider.Name()]
		}
		catalog[provider.Name()] = infos
	}

	c.JSON(http.StatusOK, gin.H{"models": catalog, "demo_mode": false})
}

// ValidateKey is POST /api/validate-key: a minimal round trip confirming the
// supplied credential is usable with the given provider.
func (h *ProviderHandler) ValidateKey(c *gin.Context) {
	var req models.ValidateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, err := services.NewProvider(req.Provider, req.APIKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := req.Model
	if model == "" {
		model = provider.DefaultModel()
	}

	if err := provider.Validate(c.Request.Context(), model); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid":    false,
			"provider": provider.Name(),
			"message":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"provider": provider.Name(),
		"model":    model,
		"message":  "credential verified",
	})
}
