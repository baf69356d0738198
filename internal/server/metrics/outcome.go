package metrics

import (
	"net/http"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"google.golang.org/grpc/codes"
)

// GRPCOutcome buckets a gRPC status code into an outcome label value.
func GRPCOutcome(code codes.Code) string {
	switch code {
	case codes.OK:
		return "ok"
	case codes.InvalidArgument:
		return "invalid"
	case codes.NotFound:
		return "not_found"
	case codes.Aborted:
		return "conflict"
	case codes.Canceled:
		return "canceled"
	default:
		return "error"
	}
}

// HTTPOutcome buckets an HTTP status into an outcome label value.
func HTTPOutcome(status int) string {
	switch {
	case status < http.StatusBadRequest:
		return "ok"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusConflict:
		return "conflict"
	case status == common.StatusClientClosedRequest:
		return "canceled"
	case status < http.StatusInternalServerError:
		return "invalid"
	default:
		return "error"
	}
}
