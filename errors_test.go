package rowgraph

import (
	"errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Reason: ReasonEmptyResponse})
	require.Equal(t, "not found: EmptyResponse", err.Error())

	var nfErr *NotFoundError
	require.True(t, errors.As(err, &nfErr))
	require.Equal(t, ReasonEmptyResponse, nfErr.Reason)

	var cfgErr *ConfigurationError
	require.False(t, errors.As(err, &cfgErr))
}

func TestConfigurationError(t *testing.T) {
	err := error(&ConfigurationError{Message: "duplicate result map id: Parent"})
	require.Equal(t, "duplicate result map id: Parent", err.Error())

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))

	var nfErr *NotFoundError
	require.False(t, errors.As(err, &nfErr))
}
