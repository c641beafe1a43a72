package service_test

import (
	"testing"

	"github.com/MikeRez0/checkout/internal/core/validation"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDeps(t *testing.T) (*validation.Validator, *zap.Logger) {
	t.Helper()

	v, err := validation.New()
	require.NoError(t, err)

	return v, zap.NewNop()
}
