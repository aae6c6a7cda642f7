package permissions_test

import (
	"testing"

	"hotel/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedFile(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.Allows("/v1/admin/bookings/{id}/check-in", "POST", "staff"))
	assert.False(t, data.Allows("/v1/admin/rooms/{id}/revenue", "GET", "staff"))
	assert.True(t, data.Allows("/v1/admin/rooms/{id}/revenue", "GET", "admin"))
}

func TestAllows(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/v1/rooms","method":"POST","roles":["admin"]},
		{"path":"/v1/health","method":"GET","skip":true}
	]}`))
	require.NoError(t, err)

	assert.True(t, data.Allows("/v1/rooms", "POST", "admin"))
	assert.False(t, data.Allows("/v1/rooms", "POST", "staff"))
	assert.False(t, data.Allows("/v1/rooms", "GET", "admin"), "unlisted endpoints are denied")
	assert.True(t, data.Allows("/v1/health", "GET", ""))
}

func TestParse_Malformed(t *testing.T) {
	_, err := permissions.Parse([]byte(`{`))

	assert.Error(t, err)
}
