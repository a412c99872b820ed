package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"stokado/internal/core/sequence"
	"stokado/internal/infrastructure/http/v1/dto"
	"stokado/internal/infrastructure/storage/postgres"
)

// SequenceHandler exposes administrative access to the identifier
// sequence service: reserving identifiers for external integrations,
// inspecting counters and resetting them.
type SequenceHandler struct {
	*BaseHandler
	manager *sequence.Manager
	audit   *postgres.AuditService
}

// NewSequenceHandler creates a new sequence handler.
// audit may be nil; resets are then not recorded.
func NewSequenceHandler(base *BaseHandler, manager *sequence.Manager, audit *postgres.AuditService) *SequenceHandler {
	return &SequenceHandler{BaseHandler: base, manager: manager, audit: audit}
}

// Generate handles POST /sequences/:prefix/generate.
// Reserves one or more identifiers under a prefix.
func (h *SequenceHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()
	prefix := c.Param("prefix")

	req := dto.GenerateRequest{Count: 1}
	if c.Request.ContentLength > 0 {
		if !h.BindJSON(c, &req) {
			return
		}
	}
	if req.Count == 0 {
		req.Count = 1
	}

	var (
		ids []string
		err error
	)
	if req.Count == 1 {
		var one string
		one, err = h.manager.Generate(ctx, prefix)
		ids = []string{one}
	} else {
		ids, err = h.manager.GenerateBatch(ctx, prefix, req.Count)
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	normalized, err := sequence.NormalizePrefix(prefix)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Prefix: normalized,
		IDs:    ids,
	})
}

// Current handles GET /sequences/:prefix/current.
// Returns the most recently issued identifier without advancing.
func (h *SequenceHandler) Current(c *gin.Context) {
	current, err := h.manager.Current(c.Request.Context(), c.Param("prefix"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"latestId": current})
}

// Stats handles GET /sequences/:prefix.
func (h *SequenceHandler) Stats(c *gin.Context) {
	stats, err := h.manager.PrefixStats(c.Request.Context(), c.Param("prefix"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// List handles GET /sequences - all known counters.
func (h *SequenceHandler) List(c *gin.Context) {
	limit := h.ParseIntQuery(c, "limit", 100)
	offset := h.ParseIntQuery(c, "offset", 0)

	states, err := h.manager.Prefixes(c.Request.Context(), limit, offset)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]dto.SequenceStateResponse, len(states))
	for i, s := range states {
		items[i] = dto.FromSequenceState(s)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Reset handles POST /sequences/:prefix/reset.
// Administrative: overwrites the counter, identifiers may repeat afterwards.
func (h *SequenceHandler) Reset(c *gin.Context) {
	var req dto.ResetSequenceRequest
	if c.Request.ContentLength > 0 {
		if !h.BindJSON(c, &req) {
			return
		}
	}

	resetTo, err := h.manager.Reset(c.Request.Context(), c.Param("prefix"), req.ResetTo)
	if err != nil {
		h.Error(c, err)
		return
	}

	// Reset already validated the prefix.
	normalized, _ := sequence.NormalizePrefix(c.Param("prefix"))

	if h.audit != nil {
		payload, _ := json.Marshal(gin.H{"resetTo": resetTo})
		entry := postgres.AuditEntry{
			EntityType: "sequence:" + normalized,
			Action:     postgres.AuditActionSequenceReset,
			Changes:    payload,
		}
		// Best-effort: the reset itself already succeeded.
		_ = h.audit.Log(c.Request.Context(), entry)
	}

	c.JSON(http.StatusOK, dto.ResetSequenceResponse{
		Prefix:  normalized,
		ResetTo: resetTo,
	})
}

// RegisterRoutes wires sequence routes onto a group.
func (h *SequenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:prefix", h.Stats)
	rg.GET("/:prefix/current", h.Current)
	rg.POST("/:prefix/generate", h.Generate)
	rg.POST("/:prefix/reset", h.Reset)
}
