package contextutil_test

import (
	"context"
	"testing"

	"go-staffpay/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")

	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestGetLogger_Fallbacks(t *testing.T) {
	fallback := zap.NewNop().Named("fallback")
	scoped := zap.NewNop().Named("scoped")

	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.Same(t, scoped, contextutil.GetLogger(contextutil.WithLogger(context.Background(), scoped), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}

func TestDetach_KeepsMetadataDropsCancel(t *testing.T) {
	parent, cancel := context.WithCancel(contextutil.WithRequestID(context.Background(), "rid-2"))
	cancel()

	detached := contextutil.Detach(parent)

	assert.NoError(t, detached.Err())
	assert.Equal(t, "rid-2", contextutil.GetRequestID(detached))
}
