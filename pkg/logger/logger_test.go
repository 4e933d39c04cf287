package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/limaJavier/combinations/pkg/config"
)

func TestNew(t *testing.T) {
	cases := []struct {
		cfg      config.Config
		expected zapcore.Level
	}{
		{config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "debug", Format: "console"}}, zapcore.DebugLevel},
		{config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "json"}}, zapcore.WarnLevel},
		{config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "loud"}}, zapcore.InfoLevel},
	}

	for _, c := range cases {
		log, err := New(&c.cfg)

		assert.Nil(t, err)
		assert.True(t, log.Core().Enabled(c.expected))
		assert.False(t, log.Core().Enabled(c.expected-1))
	}
}
