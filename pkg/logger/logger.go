// Package logger arma el zerolog raíz del servicio a partir de la
// configuración (APP_ENV y LOG_LEVEL).
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New construye el logger raíz. En development escribe consola legible a
// stderr; en el resto de entornos, JSON por línea a stdout. El nivel viene
// de LOG_LEVEL; un valor vacío o desconocido cae a info en lugar de abortar
// el arranque. Todas las líneas llevan el nombre del servicio.
func New(service, env, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		zl = zerolog.New(os.Stdout)
	}
	zl = zl.Level(lvl).With().Timestamp().Str("service", service).Logger()

	// Las librerías que escriben por el logger global comparten la salida.
	log.Logger = zl

	return zl
}
