package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("ES_URL", "")
	t.Setenv("ES_INDEX", "")

	cfg := Load()

	assert.Equal(t, "nile", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.ESURL)
	assert.Equal(t, "items", cfg.ESIndex)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVICE_NAME", "nile-test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "sqlite://nile.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("ES_URL", "http://es:9200")
	t.Setenv("ES_INDEX", "catalog")

	cfg := Load()

	assert.Equal(t, "nile-test", cfg.ServiceName)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "sqlite://nile.db", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "http://es:9200", cfg.ESURL)
	assert.Equal(t, "catalog", cfg.ESIndex)
}

func TestEnvIntDefault_InvalidFallsBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	assert.Equal(t, 8080, EnvIntDefault("SERVER_PORT", 8080))
}

func TestCSV(t *testing.T) {
	assert.Nil(t, CSV(""))
	assert.Equal(t, []string{"a"}, CSV(" a ,, "))
}
