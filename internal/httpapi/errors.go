package httpapi

import (
	"net/http"

	"github.com/bytedance/sonic"

	"studio/internal/apiclient"
	"studio/pkg/types"
)

// statusCoder is implemented by errors that carry an upstream HTTP status.
type statusCoder interface {
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigStd.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// errorKind classifies a backend call failure for logs.
func errorKind(err error) string {
	if _, ok := apiclient.IsStatus(err); ok {
		return "status"
	}
	switch {
	case apiclient.IsCanceled(err):
		return "canceled"
	case apiclient.IsDecode(err):
		return "decode"
	case apiclient.IsTransport(err):
		return "transport"
	default:
		return "other"
	}
}
