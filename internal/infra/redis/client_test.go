package redis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workon/pkg/resource"
)

func TestNewClient(t *testing.T) {
	require.NoError(t, resource.Load(strings.NewReader(`
app:
  health:
    redis:
      host: cache.internal
      port: 6380
      password: secret
      database: 2
`)))

	client := NewClient()
	t.Cleanup(func() { _ = client.Close() })

	options := client.Options()
	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 2, options.DB)
}
