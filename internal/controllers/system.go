package controllers

import (
	"net/http"
	"time"

	"github.com/vizierworks/game-vizier/internal/services"
)

// serviceName appears in the health endpoint body.
const serviceName = "Game Dev Vizier"

// SystemController serves the root and health endpoints that report whether
// the completion client came up with a credential.
type SystemController struct {
	vizier *services.Vizier

	// keySet is the startup-time OPENAI_KEY/OPENAI_API_KEY presence check,
	// reported verbatim by the root endpoint.
	keySet bool
}

// NewSystemController creates a new SystemController.
func NewSystemController(vizier *services.Vizier, keySet bool) *SystemController {
	return &SystemController{
		vizier: vizier,
		keySet: keySet,
	}
}

// GetHome handles GET /.
func (c *SystemController) GetHome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Game Dev Vizier API is running!",
		"status":  "healthy",
		"endpoints": map[string]string{
			"health":  "/api/health",
			"analyze": "/api/analyze-game (POST)",
			"test":    "/api/test (POST)",
		},
		"environment_check": map[string]bool{
			"openai_key_set": c.keySet,
			"client_ready":   c.vizier.Ready(),
		},
	})
}

// GetHealth handles GET /api/health.
func (c *SystemController) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   serviceName,
		"environment": map[string]bool{
			"openai_configured": c.vizier.Ready(),
		},
	})
}
