package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/veritas/internal/model"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, LandingText)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"strategy": s.analyzer.StrategyName(),
	})
}

// handleAnalyze always answers with an AnalysisResult body. The status code
// follows the verdict.
func (s *Server) handleAnalyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)

	var req model.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res := model.NewErrorResult(model.VerdictInputError, SummaryInvalidBody, err)
		c.JSON(res.HTTPStatus(), res)
		return
	}

	res := s.analyzer.Analyze(c.Request.Context(), req)
	c.JSON(res.HTTPStatus(), res)
}
