package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	_ "time/tzdata"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewFromFile(t *testing.T) {
	path := writeConfig(t, `
timezone: Asia/Tokyo
outputLayout: "2006-01-02"
listenAddr: ":9090"
metricsEnabled: true
tracingEnabled: true
logLevel: warn
locationCacheSize: 5
`)

	s, err := NewFromFile(path)

	require.NoError(t, err)
	assert.NoError(t, s.Validate())
	assert.Equal(t, Config{
		Timezone:          "Asia/Tokyo",
		OutputLayout:      "2006-01-02",
		ListenAddr:        ":9090",
		MetricsEnabled:    true,
		TracingEnabled:    true,
		LogLevel:          "warn",
		LocationCacheSize: 5,
	}, s.GetConfig())
}

func TestNewFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "Нет файла", path: filepath.Join(t.TempDir(), "missing.yaml"), wantErr: "reading config file"},
		{name: "Неверный yaml", path: writeConfig(t, "timezone: [UTC"), wantErr: "parsing yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewFromFile(tt.path)

			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidate_collectsAllErrors(t *testing.T) {
	s := &Service{config: Config{
		Timezone:          "Mars/Olympus",
		LogLevel:          "loud",
		LocationCacheSize: -1,
	}}

	err := s.Validate()

	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorContains(t, err, "timezone")
	assert.ErrorContains(t, err, "logLevel")
	assert.ErrorContains(t, err, "locationCacheSize")
}

func TestValidate_emptyIsValid(t *testing.T) {
	s := &Service{}

	assert.NoError(t, s.Validate())
}

func TestNew_defaultFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Join("..", "..")))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	s, err := New()

	require.NoError(t, err)
	assert.NoError(t, s.Validate())
	assert.Equal(t, "Europe/Moscow", s.GetConfig().Timezone)
}
