package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"geohash-api/internal/geohash"
	"geohash-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// GeohashService interface for dependency injection
type GeohashService interface {
	Encode(context.Context, float64, float64, int) (*models.Cell, error)
	Decode(context.Context, string) (*models.Cell, error)
	Adjacent(context.Context, string, string) (*models.Cell, error)
	Neighbours(context.Context, string) (*models.Neighbourhood, error)
}

// PrecisionPolicy decides what happens when a request omits the precision parameter.
// When Required is false, Default is used instead.
type PrecisionPolicy struct {
	Required bool
	Default  int
}

// GeohashHandler handles geohash requests
type GeohashHandler struct {
	service   GeohashService
	precision PrecisionPolicy
}

// NewGeohashHandler creates a new geohash handler
func NewGeohashHandler(svc GeohashService, precision PrecisionPolicy) *GeohashHandler {
	return &GeohashHandler{service: svc, precision: precision}
}

// Register mounts the geohash routes on r
func (h *GeohashHandler) Register(r gin.IRoutes) {
	r.GET("/encode", h.Encode)
	r.GET("/decode", h.Decode)
	r.GET("/adjacent", h.Adjacent)
	r.GET("/neighbours", h.Neighbours)
}

// Encode handles GET /encode requests
//
//	@Summary	Encode a coordinate
//	@Tags		geohash
//	@Produce	json
//	@Param		lat			query		number	true	"latitude in [-90, 90]"
//	@Param		lon			query		number	true	"longitude in [-180, 180]"
//	@Param		precision	query		int		false	"hash length in [1, 12]"
//	@Success	200			{object}	models.Cell
//	@Failure	400			{object}	map[string]string
//	@Router		/encode [get]
func (h *GeohashHandler) Encode(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	precision := h.precision.Default
	if precisionStr, ok := c.GetQuery("precision"); ok && precisionStr != "" {
		precision, err = strconv.Atoi(precisionStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid precision format"})
			return
		}
	} else if h.precision.Required {
		c.JSON(http.StatusBadRequest, gin.H{"error": "precision is required"})
		return
	}

	cell, err := h.service.Encode(c.Request.Context(), lat, lon, precision)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, cell)
}

// Decode handles GET /decode requests
//
//	@Summary	Decode a geohash to its cell center
//	@Tags		geohash
//	@Produce	json
//	@Param		hash	query		string	true	"geohash"
//	@Success	200		{object}	models.Cell
//	@Failure	400		{object}	map[string]string
//	@Router		/decode [get]
func (h *GeohashHandler) Decode(c *gin.Context) {
	hash := c.Query("hash")
	if hash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'hash'"})
		return
	}

	cell, err := h.service.Decode(c.Request.Context(), hash)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, cell)
}

// Adjacent handles GET /adjacent requests
//
//	@Summary	Find the adjacent cell in a direction
//	@Tags		geohash
//	@Produce	json
//	@Param		hash		query		string	true	"geohash"
//	@Param		direction	query		string	true	"one of n, e, s, w"
//	@Success	200			{object}	models.Cell
//	@Failure	400			{object}	map[string]string
//	@Failure	422			{object}	map[string]string
//	@Router		/adjacent [get]
func (h *GeohashHandler) Adjacent(c *gin.Context) {
	hash := c.Query("hash")
	direction := c.Query("direction")

	if hash == "" || direction == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'hash' and 'direction'"})
		return
	}

	cell, err := h.service.Adjacent(c.Request.Context(), hash, direction)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, cell)
}

// Neighbours handles GET /neighbours requests
//
//	@Summary	List the eight cells around a geohash
//	@Tags		geohash
//	@Produce	json
//	@Param		hash	query		string	true	"geohash"
//	@Success	200		{object}	models.Neighbourhood
//	@Failure	400		{object}	map[string]string
//	@Failure	422		{object}	map[string]string
//	@Router		/neighbours [get]
func (h *GeohashHandler) Neighbours(c *gin.Context) {
	hash := c.Query("hash")
	if hash == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'hash'"})
		return
	}

	neighbourhood, err := h.service.Neighbours(c.Request.Context(), hash)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, neighbourhood)
}

// fail maps input errors to 4xx responses and everything else to a 500.
func (h *GeohashHandler) fail(c *gin.Context, err error) {
	var verr *geohash.ValidationError
	if errors.As(err, &verr) {
		status := http.StatusBadRequest
		if errors.Is(verr, geohash.ErrBoundary) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": verr.Error()})
		return
	}

	zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
