package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetOutput 测试输出重定向对已有 Logger 生效
func TestSetOutput(t *testing.T) {
	log := Logger("test-output")
	SetLevel("test-output", slog.LevelDebug)

	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)

	log.Debug("after switch", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "after switch")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "subsystem=test-output")
	assert.Contains(t, out, "level=debug")
}

// TestLogger_Cached 测试同一子系统返回同一实例
func TestLogger_Cached(t *testing.T) {
	assert.Same(t, Logger("cached"), Logger("cached"))
}

// TestSetLevel 测试动态调整级别影响派生 Logger
func TestSetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)

	derived := Logger("test-level").With("fabric", "f1")
	SetLevel("test-level", slog.LevelError)
	derived.Warn("hidden")
	assert.Empty(t, buf.String())

	SetLevel("test-level", slog.LevelDebug)
	derived.Debug("shown")
	assert.Contains(t, buf.String(), "fabric=f1")
}

// TestParseConfig 测试环境变量解析
func TestParseConfig(t *testing.T) {
	env := map[string]string{
		envLevel:     "discovery=debug, resolver = error ,info,bogus=loud",
		envFormat:    "JSON",
		envAddSource: "1",
	}
	cfg := parseConfig(func(k string) string { return env[k] })

	require.NotNil(t, cfg)
	assert.Equal(t, slog.LevelInfo, cfg.DefaultLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LevelForSubsystem("discovery"))
	assert.Equal(t, slog.LevelError, cfg.LevelForSubsystem("resolver"))
	assert.Equal(t, slog.LevelInfo, cfg.LevelForSubsystem("fabric"))
	assert.NotContains(t, cfg.SubsystemLevels, "bogus")
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.AddSource)
}

// TestParseConfig_Defaults 测试默认配置
func TestParseConfig_Defaults(t *testing.T) {
	cfg := parseConfig(func(string) string { return "" })
	assert.Equal(t, slog.LevelWarn, cfg.DefaultLevel)
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.AddSource)
}

// TestDiscard 测试丢弃 Logger
func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("nothing")
}
