package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/zonejson/internal/api/models"
	"github.com/jroosing/zonejson/internal/database"
)

// ListZones godoc
// @Summary List stored zones
// @Tags zones
// @Produce json
// @Success 200 {object} models.ZoneListResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}

	zones, err := h.db.ListZones()
	if err != nil {
		h.logger.Error("list zones failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list zones"})
		return
	}

	resp := models.ZoneListResponse{Zones: make([]models.ZoneSummary, 0, len(zones))}
	for _, z := range zones {
		resp.Zones = append(resp.Zones, zoneSummary(z))
	}
	resp.Count = len(resp.Zones)

	c.JSON(http.StatusOK, resp)
}

// CreateZone godoc
// @Summary Parse and store a zone
// @Description Parses zonefile text and stores the result under the given name, replacing any previous version
// @Tags zones
// @Accept json
// @Produce json
// @Param request body models.ZoneCreateRequest true "Zone name and zonefile text"
// @Success 201 {object} models.ZoneDetailResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones [post]
func (h *Handler) CreateZone(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}

	var req models.ZoneCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	zf, ok := h.parseText(c, req.Text, h.lenientFor(req.Lenient))
	if !ok {
		return
	}

	if err := h.db.SaveZone(req.Name, req.Text, zf); err != nil {
		h.logger.Error("save zone failed", "zone", req.Name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store zone"})
		return
	}

	stored, err := h.db.GetZone(req.Name)
	if err != nil {
		h.logger.Error("reload zone failed", "zone", req.Name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load stored zone"})
		return
	}

	c.JSON(http.StatusCreated, zoneDetail(stored))
}

// GetZone godoc
// @Summary Get a stored zone
// @Tags zones
// @Produce json
// @Param name path string true "Zone name"
// @Success 200 {object} models.ZoneDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name} [get]
func (h *Handler) GetZone(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}

	name := c.Param("name")
	stored, err := h.db.GetZone(name)
	if err != nil {
		if errors.Is(err, database.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "zone not found"})
			return
		}
		h.logger.Error("get zone failed", "zone", name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load zone"})
		return
	}

	c.JSON(http.StatusOK, zoneDetail(stored))
}

// DeleteZone godoc
// @Summary Delete a stored zone
// @Tags zones
// @Produce json
// @Param name path string true "Zone name"
// @Success 200 {object} models.StatusResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /zones/{name} [delete]
func (h *Handler) DeleteZone(c *gin.Context) {
	if !h.requireStore(c) {
		return
	}

	name := c.Param("name")
	if err := h.db.DeleteZone(name); err != nil {
		if errors.Is(err, database.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "zone not found"})
			return
		}
		h.logger.Error("delete zone failed", "zone", name, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete zone"})
		return
	}

	c.JSON(http.StatusOK, models.StatusResponse{Status: "deleted"})
}

// requireStore rejects the request when the server runs without a database.
func (h *Handler) requireStore(c *gin.Context) bool {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "zone storage is not configured"})
		return false
	}
	return true
}

func zoneSummary(z database.ZoneSummary) models.ZoneSummary {
	return models.ZoneSummary{
		Name:        z.Name,
		Origin:      z.Origin,
		RecordCount: z.RecordCount,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}

func zoneDetail(z *database.StoredZone) models.ZoneDetailResponse {
	return models.ZoneDetailResponse{
		ZoneSummary: zoneSummary(z.ZoneSummary),
		Zone:        z.Zone,
	}
}
