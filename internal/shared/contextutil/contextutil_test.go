package contextutil_test

import (
	"context"
	"testing"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMetadataRoundTrip(t *testing.T) {
	md := contextutil.Metadata{RequestID: "rid-1", Organization: "Acme"}

	ctx := md.Inject(context.Background())

	assert.Equal(t, md, contextutil.ExtractMetadata(ctx))
	assert.Len(t, md.Fields(), 2)
	assert.Empty(t, contextutil.GetUserID(ctx))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewExample()
	scoped := zap.NewExample().Named("scoped")

	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.Same(t, scoped, contextutil.GetLogger(contextutil.WithLogger(context.Background(), scoped), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
