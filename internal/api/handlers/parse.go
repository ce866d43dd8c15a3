package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/zonejson/internal/api/models"
	"github.com/jroosing/zonejson/internal/zonefile"
)

// Parse godoc
// @Summary Parse a zonefile
// @Description Parses zonefile text into a structured record set without storing it
// @Tags parse
// @Accept json
// @Produce json
// @Param request body models.ParseRequest true "Zonefile text to parse"
// @Success 200 {object} models.ParseResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /parse [post]
func (h *Handler) Parse(c *gin.Context) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	zf, ok := h.parseText(c, req.Text, h.lenientFor(req.Lenient))
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.ParseResponse{
		Zone:        zf,
		RecordCount: zf.RecordCount(),
	})
}

// parseText runs a parse with instrumentation and writes the error response
// on failure.
func (h *Handler) parseText(c *gin.Context, text string, lenient bool) (zonefile.ZoneFile, bool) {
	start := time.Now()

	var (
		zf  zonefile.ZoneFile
		err error
	)
	if lenient {
		zf, err = zonefile.ParseLenient(text)
	} else {
		zf, err = zonefile.Parse(text)
	}
	if err != nil {
		h.metrics.ObserveParseError()

		var perr *zonefile.ParseError
		if errors.As(err, &perr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: perr.Reason, Line: perr.Line})
			return nil, false
		}
		h.logger.Error("parse failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "parse failed"})
		return nil, false
	}

	h.metrics.ObserveParse(zf.RecordCount(), time.Since(start))
	return zf, true
}
