package handler

import (
	"encoding/base64"
	"io"
	"net"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

const maxBodyBytes = 1 << 20

// ServeHTTP adapts plain HTTP requests to Handle for local runs.
func (h *APIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	query := make(map[string]string, len(r.URL.Query()))
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	req := events.APIGatewayProxyRequest{
		Path:                  r.URL.Path,
		HTTPMethod:            r.Method,
		QueryStringParameters: query,
		Body:                  string(body),
	}
	req.RequestContext.Identity.SourceIP = clientIP(r)

	resp, err := h.Handle(r.Context(), req)
	if err != nil {
		h.logger.Error("handler failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	payload := []byte(resp.Body)
	if resp.IsBase64Encoded {
		payload, err = base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			h.logger.Error("invalid base64 response body", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(payload)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
