package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sovinsight/internal/apperr"
	"sovinsight/internal/model"
	"sovinsight/pkg/gateway"
)

type InsightGenerator interface {
	Generate(ctx context.Context, kind model.ReportKind, creds gateway.Credentials, req model.InsightRequest) (model.ReportPayload, error)
}

type InsightHandler struct {
	generator InsightGenerator
	version   string
}

func NewInsightHandler(generator InsightGenerator, version string) *InsightHandler {
	return &InsightHandler{generator: generator, version: version}
}

// GenerateInsight builds the POST handler for one report kind.
func (h *InsightHandler) GenerateInsight(kind model.ReportKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := gateway.Credentials{
			Token:        c.GetHeader("x-token"),
			RefreshToken: c.GetHeader("x-refresh-token"),
		}
		if creds.Token == "" || creds.RefreshToken == "" {
			c.JSON(http.StatusBadRequest, failResponse("x-token and x-refresh-token headers are required"))
			return
		}

		var req InsightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Warn("invalid insight request", "kind", kind, "error", err)
			c.JSON(http.StatusBadRequest, failResponse("invalid request body"))
			return
		}

		payload, err := h.generator.Generate(c.Request.Context(), kind, creds, model.InsightRequest{
			TopicIDs:  req.TopicIDs,
			FromDate1: req.FromDate1,
			ToDate1:   req.ToDate1,
			FromDate2: req.FromDate2,
			ToDate2:   req.ToDate2,
		})
		if err != nil {
			slog.Error("error generating insight", "kind", kind, "error", err)
			c.JSON(apperr.HTTPStatus(err), failResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, successResponse(payload))
	}
}

func (h *InsightHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
	})
}
