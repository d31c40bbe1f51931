// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Service: Service{TickInterval: 250 * time.Millisecond}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 250*time.Millisecond, cfg.Service.TickInterval)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{GRPCAddress: "localhost:1111"}},
		&StructuredConfig{Server: Server{GRPCAddress: "localhost:2222"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2222", cfg.Server.GRPCAddress)
}

// TestBuild_ZeroFieldDoesNotOverride verifies that an empty field of a later
// source keeps the earlier value.
func TestBuild_ZeroFieldDoesNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Service: Service{DeliveryBuffer: 4}},
		&StructuredConfig{},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Service.DeliveryBuffer)
}

// TestBuild_DefaultsFillGaps verifies that defaults only fill fields no
// source has set.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Service: Service{KillDelay: time.Second}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Service.KillDelay)
	assert.Equal(t, time.Second, cfg.Service.TickInterval)
	assert.Equal(t, 16, cfg.Service.DeliveryBuffer)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("SERVICE_TICK_INTERVAL", "2s")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, 2*time.Second, b.configs[0].Service.TickInterval)
}

// TestWithEnv_InvalidValue verifies that a malformed env value is recorded
// as a builder error.
func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("SERVICE_TICK_INTERVAL", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_UnknownFlag verifies that an unknown flag becomes a builder
// error.
func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Service.TickInterval = Duration(3 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 3*time.Second, b.configs[1].Service.TickInterval)
}

// TestWithJSON_SetsError_WhenFileMissing verifies that a missing file is
// recorded as a builder error.
func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that the last source naming a JSON file
// wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/ignored.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── GetStructuredConfig / GetClientConfig ────────────────────────────────────

// TestGetStructuredConfig_FlagsOverrideEnv verifies source priority end to end.
func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("SERVER_GRPC_ADDRESS", "localhost:7000")
	t.Setenv("SERVICE_TICK_INTERVAL", "2s")

	cfg, err := GetStructuredConfig([]string{"-grpc-address", "127.0.0.1:7001"})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7001", cfg.Server.GRPCAddress)
	assert.Equal(t, 2*time.Second, cfg.Service.TickInterval)
}

// TestGetClientConfig_InvalidPolicy verifies that an unknown policy flag name
// fails client validation.
func TestGetClientConfig_InvalidPolicy(t *testing.T) {
	t.Setenv("CLIENT_POLICY", "auto-create,bogus")

	cfg, err := GetClientConfig()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidClientConfigs)
}

// TestGetClientConfig_Defaults verifies that the client can start from
// defaults alone.
func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Client.GRPCAddress)
	assert.Equal(t, "auto-create", cfg.Client.Policy)
}
