package partner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/textile/backend/internal/domain/shared"
)

func assertDomainError(t *testing.T, err error) *shared.DomainError {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	return domainErr
}
