package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/astrolab/observatory-api/internal/usecase"
)

// Handler handles HTTP requests for angle conversion and image persistence.
type Handler struct {
	convertUC *usecase.ConvertUseCase
	imageUC   *usecase.ImageUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(convertUC *usecase.ConvertUseCase, imageUC *usecase.ImageUseCase) *Handler {
	return &Handler{
		convertUC: convertUC,
		imageUC:   imageUC,
	}
}

// GetDecimal handles GET /v1/angles/decimal.
func (h *Handler) GetDecimal(c *gin.Context) {
	value := c.Query("value")
	frame := c.Query("frame")
	if frame == "" {
		frame = "dec"
	}

	response, err := h.convertUC.ToDecimal(usecase.DecimalRequest{
		Value: value,
		Frame: frame,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSexagesimal handles GET /v1/angles/sexagesimal.
func (h *Handler) GetSexagesimal(c *gin.Context) {
	degreesStr := c.Query("degrees")
	if degreesStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "degrees parameter is required"})
		return
	}
	degrees, err := strconv.ParseFloat(degreesStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid degrees: %v", err)})
		return
	}

	frame := c.Query("frame")
	if frame == "" {
		frame = "dec"
	}

	sep := c.Query("sep")
	if sep == "" {
		sep = ":"
	}

	// Default precision: 3 fractional digits of the seconds field.
	precision := 3
	if precisionStr := c.Query("precision"); precisionStr != "" {
		precision, err = strconv.Atoi(precisionStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid precision: %v", err)})
			return
		}
	}

	// Default: declinations are signed, hour angles are not.
	signShown := frame == "dec" || frame == "deg" || frame == "degrees"
	if signStr := c.Query("sign"); signStr != "" {
		signShown, err = strconv.ParseBool(signStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid sign: %v", err)})
			return
		}
	}

	response, err := h.convertUC.ToSexagesimal(usecase.SexagesimalRequest{
		Degrees:   degrees,
		Frame:     frame,
		Separator: sep,
		Precision: precision,
		SignShown: signShown,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SaveImage handles POST /v1/images.
func (h *Handler) SaveImage(c *gin.Context) {
	var req usecase.SaveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	response, err := h.imageUC.Save(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetImageStats handles POST /v1/images/stats.
func (h *Handler) GetImageStats(c *gin.Context) {
	var req usecase.StatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	response, err := h.imageUC.Stats(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
