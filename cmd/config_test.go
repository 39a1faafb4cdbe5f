package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "strmut", configBaseName)
	assert.Equal(t, "strmut.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "mutator.spread", mutatorSpreadKey)
	assert.Equal(t, "mutator.seed", mutatorSeedKey)
	assert.Equal(t, "mutator.single_pass", mutatorSinglePassKey)
	assert.Equal(t, ".strmut-reports", defaultReportsDir)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "STRMUT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    uint64
		wantOK  bool
		wantErr bool
	}{
		{"empty", "", 0, false, false},
		{"blank", "   ", 0, false, false},
		{"zero", "0", 0, true, false},
		{"number", "42", 42, true, false},
		{"max", "18446744073709551615", 18446744073709551615, true, false},
		{"negative", "-1", 0, false, true},
		{"garbage", "abc", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := parseSeed(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestRandomizationPolicy_FromConfig(t *testing.T) {
	viper.Set(mutatorSpreadKey, 7)
	viper.Set(mutatorSinglePassKey, true)
	t.Cleanup(func() {
		viper.Set(mutatorSpreadKey, nil)
		viper.Set(mutatorSinglePassKey, nil)
	})

	policy := randomizationPolicy()
	assert.Equal(t, 7, policy.Spread)
	assert.True(t, policy.SinglePass)
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	logPath := t.TempDir() + "/strmut.log"

	configureLogger(logPath, true)
	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))

	configureLogger(logPath, false)
	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}
