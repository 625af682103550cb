package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leetmentor/bot/internal/domain"
	"github.com/leetmentor/bot/internal/service"
)

// StatusHandler serves the operational endpoints of the bot process
type StatusHandler struct {
	problems *service.ProblemService
	catalog  domain.ProblemCatalog
	sessions domain.SessionRepository
	profiles domain.ProfileRepository
	version  string
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(
	problems *service.ProblemService,
	catalog domain.ProblemCatalog,
	sessions domain.SessionRepository,
	profiles domain.ProfileRepository,
	version string,
) *StatusHandler {
	return &StatusHandler{
		problems: problems,
		catalog:  catalog,
		sessions: sessions,
		profiles: profiles,
		version:  version,
	}
}

// Health reports process liveness. The catalog being unloaded is not a
// failure; it refills on demand.
// GET /health
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"version":        h.version,
		"catalog_loaded": h.catalog.Size() > 0,
	})
}

// Stats reports in-memory store sizes and the catalog difficulty split
// GET /stats
func (h *StatusHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"catalog":  h.problems.CatalogStats(c.Request.Context()),
		"sessions": h.sessions.Count(),
		"profiles": h.profiles.Count(),
	})
}
