package resource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResolvesEnvironment(t *testing.T) {
	t.Setenv("ZIPCODE_TEST_HOST", "db.internal")

	require.NoError(t, Load([]byte(`
test:
  host: ${ZIPCODE_TEST_HOST:localhost}
  port: ${ZIPCODE_TEST_PORT_UNSET:5432}
  empty: ${ZIPCODE_TEST_EMPTY_UNSET:}
  timeout: 15s
  enabled: true
`)))

	assert.Equal(t, "db.internal", GetString("test.host"))
	assert.Equal(t, 5432, GetInt("test.port"))
	assert.Equal(t, 15*time.Second, GetDuration("test.timeout"))
	assert.True(t, GetBool("test.enabled"))
	assert.Equal(t, "fallback", GetStringOrDefault("test.empty", "fallback"))
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 7, GetIntOrDefault("test.missing-int", 7))
	assert.Equal(t, time.Minute, GetDurationOrDefault("test.missing-duration", time.Minute))

	Set("test.override", 42)
	assert.Equal(t, 42, GetIntOrDefault("test.override", 7))
}
