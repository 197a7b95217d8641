package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"lettrix/internal/app"
	"lettrix/internal/domain"
	"lettrix/internal/models"
)

// Letters is the application surface served over HTTP.
type Letters interface {
	Categories() []app.CategoryInfo
	Generate(ctx context.Context, categoryID string, fields domain.FieldMap) (domain.Result, error)
	Export(ctx context.Context, req app.ExportRequest) (*domain.Export, error)
	RecordVisit(ctx context.Context)
	Stats(ctx context.Context, date string) (map[string]int64, error)
}

// APIHandler handles HTTP requests from API Gateway.
type APIHandler struct {
	letters Letters
	logger  *slog.Logger
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(letters Letters, logger *slog.Logger) *APIHandler {
	return &APIHandler{
		letters: letters,
		logger:  logger,
	}
}

// Handle routes API Gateway requests to the appropriate handler.
func (h *APIHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("request received",
		"path", req.Path,
		"method", req.HTTPMethod)

	h.letters.RecordVisit(ctx)

	segments := strings.Split(strings.Trim(req.Path, "/"), "/")

	switch {
	case req.Path == "/categories" && req.HTTPMethod == http.MethodGet:
		return models.NewSuccessResponse(http.StatusOK, h.letters.Categories()), nil
	case req.Path == "/stats" && req.HTTPMethod == http.MethodGet:
		return h.handleStats(ctx, req)
	case len(segments) == 3 && segments[0] == "letters" && req.HTTPMethod == http.MethodPost:
		switch segments[2] {
		case "generate":
			return h.handleGenerate(ctx, segments[1], req)
		case "export":
			return h.handleExport(ctx, segments[1], req)
		}
	}

	h.logger.Warn("route not found",
		"path", req.Path,
		"method", req.HTTPMethod)
	return models.NewErrorResponse(http.StatusNotFound, "route not found"), nil
}

func (h *APIHandler) handleStats(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	date := req.QueryStringParameters["date"]

	counts, err := h.letters.Stats(ctx, date)
	if err != nil {
		return h.errorResponse(err), nil
	}

	return models.NewSuccessResponse(http.StatusOK, counts), nil
}
