package requestid

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := ToContext(context.Background(), "abc")
	assert.Equal(t, "abc", FromContext(ctx))

	r := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
	assert.Equal(t, "abc", FromRequest(r))
}

func TestMissing(t *testing.T) {
	t.Parallel()
	assert.Empty(t, FromContext(context.Background()))
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	_, err := uuid.Parse(Generate())
	assert.NoError(t, err)
	assert.NotEqual(t, Generate(), Generate())
}
