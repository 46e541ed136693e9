package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Backend: BackendSQLite}.Validate())
	assert.ErrorIs(t, Config{DataDir: ".advent"}.Validate(), ErrBackendEmpty)

	err := Config{Backend: "postgres", DataDir: ".advent"}.Validate()
	require.ErrorIs(t, err, ErrBackendUnknown)
	assert.Contains(t, err.Error(), `"postgres"`)
}

func TestConfigWithDefaults(t *testing.T) {
	tests := []struct {
		in   Config
		want string
	}{
		{Config{Backend: BackendSQLite}, DefaultDataDir},
		{Config{Backend: BackendSQLite, DataDir: "/srv/advent"}, "/srv/advent"},
		{Config{DataDir: ".advent"}, ".advent"},
	}
	for _, tt := range tests {
		got := tt.in.WithDefaults()
		assert.Equal(t, tt.want, got.DataDir)
		assert.Equal(t, tt.in.Backend, got.Backend)
	}
}
