package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: plant
  user: plant
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverPostgres, cfg.Database.Driver)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "plant", cfg.Database.Name)
				assert.Equal(t, "plant", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: plant
  user: plant
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, int64(64<<10), cfg.Ingest.MaxBodyBytes)
				assert.Zero(t, cfg.Ingest.RateLimit.PerSecond)
				assert.Zero(t, cfg.Ingest.RateLimit.Burst)
				assert.False(t, cfg.MQTT.Enabled)
				assert.Equal(t, "plant/sensors/+/readings", cfg.MQTT.Topic)
				assert.Equal(t, "plant-telemetry", cfg.MQTT.ClientID)
				assert.Equal(t, 10*time.Second, cfg.MQTT.ConnectTimeout)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "memory driver needs no connection settings",
			yaml: `
database:
  driver: memory
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DriverMemory, cfg.Database.Driver)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: plant
  user: plant
  password: "${TEST_DB_PASSWORD}"
mqtt:
  enabled: true
  broker: tcp://broker:1883
  password: "${TEST_MQTT_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD":   "secret123",
				"TEST_MQTT_PASSWORD": "mqttpass",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
				assert.Equal(t, "mqttpass", cfg.MQTT.Password)
			},
		},
		{
			name: "rate limit burst defaults when enabled",
			yaml: `
database:
  driver: memory
ingest:
  max_body_bytes: 1024
  rate_limit:
    per_second: 2.5
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, int64(1024), cfg.Ingest.MaxBodyBytes)
				assert.InDelta(t, 2.5, cfg.Ingest.RateLimit.PerSecond, 1e-9)
				assert.Equal(t, 10, cfg.Ingest.RateLimit.Burst)
			},
		},
		{
			name: "full mqtt section",
			yaml: `
database:
  driver: memory
mqtt:
  enabled: true
  broker: tcp://broker:1883
  client_id: plant-edge
  topic: site/+/telemetry
  qos: 2
  connect_timeout: 3s
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.MQTT.Enabled)
				assert.Equal(t, "tcp://broker:1883", cfg.MQTT.Broker)
				assert.Equal(t, "plant-edge", cfg.MQTT.ClientID)
				assert.Equal(t, "site/+/telemetry", cfg.MQTT.Topic)
				assert.Equal(t, byte(2), cfg.MQTT.QoS)
				assert.Equal(t, 3*time.Second, cfg.MQTT.ConnectTimeout)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: plant
  user: plant
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: plant
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: plant
`,
			wantErr: "database.user is required",
		},
		{
			name: "unknown driver",
			yaml: `
database:
  driver: sqlite
`,
			wantErr: `database.driver must be one of: postgres, memory (got "sqlite")`,
		},
		{
			name: "mqtt enabled without broker",
			yaml: `
database:
  driver: memory
mqtt:
  enabled: true
`,
			wantErr: "mqtt.broker is required when mqtt is enabled",
		},
		{
			name: "mqtt qos out of range",
			yaml: `
database:
  driver: memory
mqtt:
  enabled: true
  broker: tcp://broker:1883
  qos: 3
`,
			wantErr: "mqtt.qos must be 0, 1 or 2",
		},
		{
			name: "negative rate",
			yaml: `
database:
  driver: memory
ingest:
  rate_limit:
    per_second: -1
`,
			wantErr: "ingest.rate_limit.per_second must not be negative",
		},
		{
			name: "bad port",
			yaml: `
server:
  port: 70000
database:
  driver: memory
`,
			wantErr: "server.port must be between 1 and 65535",
		},
		{
			name: "unknown log format",
			yaml: `
database:
  driver: memory
logging:
  format: xml
`,
			wantErr: `logging.format must be one of: text, json, pretty (got "xml")`,
		},
		{
			name: "errors are aggregated",
			yaml: `
database:
  host: localhost
logging:
  format: xml
`,
			wantErr: "database.name is required\ndatabase.user is required",
		},
		{
			name:    "invalid YAML",
			yaml:    "database: [",
			wantErr: "parsing config YAML",
		},
		{
			name: "custom logging",
			yaml: `
database:
  driver: memory
logging:
  level: debug
  format: pretty
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "pretty", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.Server.Port)
	require.NoError(t, validate(cfg))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "plant",
				User:     "plant",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=plant user=plant password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "telemetry",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=telemetry user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
