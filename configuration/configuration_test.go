package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefConfiguration(t *testing.T) {
	config := DefConfiguration()
	assert.Equal(t, "0.0.0.0", config.Server.Address)
	assert.Equal(t, uint16(3000), config.Server.Port)
	assert.Equal(t, "0.0.0.0:3000", config.Server.ListenAddress())
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Empty(t, config.Remote.APIKey)
	assert.Empty(t, config.Remote.Endpoint)
}

func TestResolveAPIKeyFromFlag(t *testing.T) {
	t.Setenv(AlchemyAPIKeyEnvVar, "env-key")

	config := DefConfiguration()
	config.Remote.APIKey = "flag-key"
	require.NoError(t, config.ResolveAPIKey())
	assert.Equal(t, "flag-key", config.Remote.APIKey, "a flag beats the environment")
}

func TestResolveAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv(AlchemyAPIKeyEnvVar, "env-key")

	config := DefConfiguration()
	require.NoError(t, config.ResolveAPIKey())
	assert.Equal(t, "env-key", config.Remote.APIKey)
}

func TestResolveAPIKeyMissing(t *testing.T) {
	t.Setenv(AlchemyAPIKeyEnvVar, "")

	config := DefConfiguration()
	assert.ErrorIs(t, config.ResolveAPIKey(), ErrNoAlchemyAPIKey)
}

func TestEndpointMakesKeyOptional(t *testing.T) {
	t.Setenv(AlchemyAPIKeyEnvVar, "")

	config := DefConfiguration()
	config.Remote.Endpoint = "http://127.0.0.1:8545"
	require.NoError(t, config.ResolveAPIKey())
	assert.Empty(t, config.Remote.APIKey)
}
