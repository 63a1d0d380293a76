package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZapLogger(false, &buf)
	require.NoError(t, err)

	log.With("component", "transport").Info(context.Background(), "request", "method", "GET")
	require.NoError(t, log.Sync())

	out := buf.String()
	require.Contains(t, out, `"msg":"request"`)
	require.Contains(t, out, `"component":"transport"`)
	require.Contains(t, out, `"method":"GET"`)
}

func TestZapLogger_ProductionDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZapLogger(true, &buf)
	require.NoError(t, err)

	log.Debug(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")
	_ = log.Sync()

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	l, err := New(BackendZap, false, &buf)
	require.NoError(t, err)
	require.IsType(t, &ZapLogger{}, l)

	l, err = New(BackendSlog, true, &buf)
	require.NoError(t, err)
	require.IsType(t, &SlogLogger{}, l)

	l.Debug(context.Background(), "dropped-in-production")
	require.False(t, strings.Contains(buf.String(), "dropped-in-production"))

	l, err = New("unknown", false, &buf)
	require.NoError(t, err)
	require.IsType(t, &SlogLogger{}, l)
}

func TestNop_DiscardsEverything(t *testing.T) {
	l := Nop()
	l.Error(context.Background(), "nothing", "k", "v")
	l.With("a", 1).Info(context.Background(), "still nothing")
}
