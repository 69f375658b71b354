package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/pkg/logger"
)

// captura redirige la salida del logger a un buffer conservando los campos base.
func captura(l *logger.Logger) (*bytes.Buffer, func(msg string)) {
	buf := &bytes.Buffer{}
	zl := l.Zerolog().Output(buf)
	return buf, func(msg string) { zl.Info().Msg(msg) }
}

func TestNew_EmiteCampoService(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "almacen-api"})
	buf, info := captura(l)

	info("arrancando")

	assert.Contains(t, buf.String(), `"service":"almacen-api"`,
		"cada línea debe identificar el servicio")
	assert.Contains(t, buf.String(), `"message":"arrancando"`)
}

func TestNew_SinService_OmiteElCampo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})
	buf, info := captura(l)

	info("x")

	assert.NotContains(t, buf.String(), `"service"`,
		"sin nombre configurado no debe emitirse el campo")
}

func TestNew_NivelInvalido_CaeEnInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verboso"})
	buf, _ := captura(l)

	zl := l.Zerolog().Output(buf)
	zl.Debug().Msg("oculto")
	zl.Info().Msg("visible")

	assert.NotContains(t, buf.String(), "oculto", "debug queda por debajo del nivel por defecto")
	assert.Contains(t, buf.String(), "visible")
}
