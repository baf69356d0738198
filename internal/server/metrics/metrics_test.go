package metrics

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestObserveRequest_IncrementsCounter(t *testing.T) {
	c := RequestsTotal.WithLabelValues("grpc", "/test/Method", "ok")
	before := testutil.ToFloat64(c)

	ObserveRequest("grpc", "/test/Method", "ok", 0.01)

	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestGRPCOutcome(t *testing.T) {
	assert.Equal(t, "ok", GRPCOutcome(codes.OK))
	assert.Equal(t, "invalid", GRPCOutcome(codes.InvalidArgument))
	assert.Equal(t, "not_found", GRPCOutcome(codes.NotFound))
	assert.Equal(t, "conflict", GRPCOutcome(codes.Aborted))
	assert.Equal(t, "canceled", GRPCOutcome(codes.Canceled))
	assert.Equal(t, "error", GRPCOutcome(codes.Internal))
}

func TestHTTPOutcome(t *testing.T) {
	assert.Equal(t, "ok", HTTPOutcome(http.StatusCreated))
	assert.Equal(t, "invalid", HTTPOutcome(http.StatusBadRequest))
	assert.Equal(t, "not_found", HTTPOutcome(http.StatusNotFound))
	assert.Equal(t, "conflict", HTTPOutcome(http.StatusConflict))
	assert.Equal(t, "canceled", HTTPOutcome(499))
	assert.Equal(t, "error", HTTPOutcome(http.StatusInternalServerError))
}
