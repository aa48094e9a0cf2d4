package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultAuditLimit = 25
	maxAuditLimit     = 100
)

var auditEntityTypes = map[string]bool{
	"author":   true,
	"book":     true,
	"category": true,
}

type AuditController struct {
	log AuditLog
}

func NewAuditController(log AuditLog) *AuditController {
	return &AuditController{log: log}
}

// GetAuditEvents returns the most recent audit events as JSON
// GET /api/audit?limit=25
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if err != nil || limit < 1 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	events, err := ac.log.GetRecentEvents(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c, err, "get audit events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
		"limit":  limit,
	})
}

// GetEntityEvents returns the history of a single entity
// GET /api/audit/:entityType/:id
func (ac *AuditController) GetEntityEvents(c *gin.Context) {
	entityType := c.Param("entityType")
	if !auditEntityTypes[entityType] {
		respondBadRequest(c, "invalid entityType")
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := ac.log.GetEntityEvents(c.Request.Context(), entityType, id)
	if err != nil {
		respondInternalError(c, err, "get entity audit events")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}
