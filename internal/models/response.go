package models

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

// SuccessResponse represents a success response.
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

const fallbackErrorBody = `{"error":"Internal Server Error","message":"failed to build response"}`

// NewErrorResponse creates an API Gateway error response.
func NewErrorResponse(statusCode int, message string) events.APIGatewayProxyResponse {
	return NewValidationResponse(statusCode, message, nil)
}

// NewValidationResponse creates an error response listing the offending fields.
func NewValidationResponse(statusCode int, message string, missing []string) events.APIGatewayProxyResponse {
	body := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Missing: missing,
	}
	return jsonResponse(statusCode, body)
}

// NewSuccessResponse creates an API Gateway success response.
func NewSuccessResponse(statusCode int, data interface{}) events.APIGatewayProxyResponse {
	return jsonResponse(statusCode, SuccessResponse{Data: data})
}

// NewFileResponse creates a base64 encoded attachment response.
func NewFileResponse(filename, contentType string, data []byte) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":        contentType,
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
		},
		Body:            base64.StdEncoding.EncodeToString(data),
		IsBase64Encoded: true,
	}
}

func jsonResponse(statusCode int, body interface{}) events.APIGatewayProxyResponse {
	bodyJSON, err := json.Marshal(body)
	if err != nil {
		slog.Error("failed to marshal response",
			"error", err,
			"status_code", statusCode)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    jsonHeaders(),
			Body:       fallbackErrorBody,
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    jsonHeaders(),
		Body:       string(bodyJSON),
	}
}
