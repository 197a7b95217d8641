package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"lettrix/internal/app"
	"lettrix/internal/domain"
	"lettrix/internal/models"
)

// handleGenerate handles POST /letters/{category}/generate requests.
func (h *APIHandler) handleGenerate(ctx context.Context, category string, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var genReq models.GenerateRequest

	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &genReq); err != nil {
			h.logger.Warn("invalid request body", "error", err)
			return models.NewErrorResponse(http.StatusBadRequest, "invalid request body"), nil
		}
	}

	result, err := h.letters.Generate(ctx, category, genReq.FieldMap())
	if err != nil {
		return h.errorResponse(err), nil
	}

	return models.NewSuccessResponse(http.StatusOK, result), nil
}

// handleExport handles POST /letters/{category}/export requests.
func (h *APIHandler) handleExport(ctx context.Context, category string, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var expReq models.ExportRequest

	if err := json.Unmarshal([]byte(req.Body), &expReq); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		return models.NewErrorResponse(http.StatusBadRequest, "invalid request body"), nil
	}

	if err := expReq.Validate(); err != nil {
		h.logger.Warn("validation failed", "error", err)
		return models.NewErrorResponse(http.StatusBadRequest, err.Error()), nil
	}

	userID := expReq.UserID
	if userID == "" {
		userID = req.RequestContext.Identity.SourceIP
	}

	exp, err := h.letters.Export(ctx, app.ExportRequest{
		Category: category,
		Format:   expReq.Format,
		UserID:   userID,
		Text:     expReq.Text,
		Fields:   expReq.FieldMap(),
	})
	if err != nil {
		return h.errorResponse(err), nil
	}

	return models.NewFileResponse(exp.Filename, exp.ContentType, exp.Data), nil
}

// errorResponse maps application errors onto HTTP status codes.
func (h *APIHandler) errorResponse(err error) events.APIGatewayProxyResponse {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		h.logger.Info("missing required fields", "category", verr.Category, "missing", verr.Missing)
		return models.NewValidationResponse(http.StatusUnprocessableEntity, "missing required fields", verr.Missing)
	case errors.Is(err, domain.ErrNotFound):
		return models.NewErrorResponse(http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnsupportedFormat), errors.Is(err, domain.ErrInvalidArgument):
		return models.NewErrorResponse(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrQuotaExceeded):
		return models.NewErrorResponse(http.StatusTooManyRequests, "export limit reached, try again tomorrow")
	default:
		h.logger.Error("request failed", "error", err)
		return models.NewErrorResponse(http.StatusInternalServerError, "internal error")
	}
}
