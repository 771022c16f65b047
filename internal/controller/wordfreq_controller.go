package controller

import (
	"fmt"
	"net/http"

	"wordrank/internal/config"
	"wordrank/internal/service/wordfreq"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WordFreqController struct {
	service  *wordfreq.WordFreqService
	maxLines int
	logger   *zap.Logger
}

func NewWordFreqController(service *wordfreq.WordFreqService, cfg *config.Config, logger *zap.Logger) *WordFreqController {
	return &WordFreqController{
		service:  service,
		maxLines: cfg.App.MaxLines,
		logger:   logger,
	}
}

type TopWordsRequest struct {
	Lines []string `json:"lines"`
	// K defaults to app.default_k when omitted
	K *int `json:"k" binding:"omitempty,min=0"`
}

// TopWords handles POST /api/v1/topWords
func (wc *WordFreqController) TopWords(c *gin.Context) {
	var request TopWordsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		wc.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if wc.maxLines > 0 && len(request.Lines) > wc.maxLines {
		wc.logger.Warn("Too many lines in request",
			zap.Int("lines", len(request.Lines)),
			zap.Int("max_lines", wc.maxLines))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Too many lines",
			"details": fmt.Sprintf("got %d lines, at most %d are accepted", len(request.Lines), wc.maxLines),
		})
		return
	}

	k := wc.service.ResolveK(request.K)
	wc.logger.Info("Ranking words",
		zap.Int("lines", len(request.Lines)),
		zap.Int("k", k))

	report := wc.service.Analyze(request.Lines, k)
	c.JSON(http.StatusOK, report)
}
