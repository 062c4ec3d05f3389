package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestion-api/pkg/logger"
)

func TestNew_NivelDesdeConfiguracion(t *testing.T) {
	zl := logger.New("gestion-api", "production", "warn")
	assert.Equal(t, zerolog.WarnLevel, zl.GetLevel())

	zl = logger.New("gestion-api", "development", "DEBUG")
	assert.Equal(t, zerolog.DebugLevel, zl.GetLevel())
}

func TestNew_NivelDesconocidoCaeAInfo(t *testing.T) {
	zl := logger.New("gestion-api", "production", "verboso")
	assert.Equal(t, zerolog.InfoLevel, zl.GetLevel())

	zl = logger.New("gestion-api", "production", "")
	assert.Equal(t, zerolog.InfoLevel, zl.GetLevel())
}
