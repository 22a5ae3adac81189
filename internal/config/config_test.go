package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	env, err := ProcessEnvironmentVariables()
	assert.NoError(t, err)
	assert.Equal(t, "5001", env.HTTPPort)
	assert.Equal(t, "localhost", env.PostgresAddress)
	assert.Equal(t, "5433", env.PostgresPort)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("POSTGRES_ADDRESS", "db.internal")
	t.Setenv("POSTGRES_PASSWORD", "secret")

	env, err := ProcessEnvironmentVariables()
	assert.NoError(t, err)
	assert.Equal(t, "8080", env.HTTPPort)
	assert.Equal(t, "db.internal", env.PostgresAddress)
	assert.Equal(t, "secret", env.PostgresPassword)
}

func TestPostgresDSN(t *testing.T) {
	env := &Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "finance",
		PostgresUsername: "app",
		PostgresPassword: "pw",
	}
	assert.Equal(t, "postgres://app:pw@localhost:5433/finance?sslmode=disable", env.PostgresDSN())
}
