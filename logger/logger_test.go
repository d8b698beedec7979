package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	errors []string
	infos  []string
	warns  []string
	debugs []string
}

func (r *recordingLogger) Error(msg string) { r.errors = append(r.errors, msg) }
func (r *recordingLogger) Info(msg string)  { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Warn(msg string)  { r.warns = append(r.warns, msg) }
func (r *recordingLogger) Debug(msg string) { r.debugs = append(r.debugs, msg) }

func TestCustomFactoryRoutesAllLevels(t *testing.T) {
	rec := &recordingLogger{}
	SetFactory(func() Logger { return rec })
	defer ResetFactory()

	l := New()
	l.Info("info message")
	l.Error("error message")
	l.Warn("warn message")
	l.Debug("debug message")

	assert.Equal(t, []string{"info message"}, rec.infos)
	assert.Equal(t, []string{"error message"}, rec.errors)
	assert.Equal(t, []string{"warn message"}, rec.warns)
	assert.Equal(t, []string{"debug message"}, rec.debugs)
}

func TestResetFactoryRestoresDefault(t *testing.T) {
	rec := &recordingLogger{}
	SetFactory(func() Logger { return rec })
	ResetFactory()

	l := New()
	require.NotNil(t, l)
	l.Info("after reset")
	assert.Empty(t, rec.infos, "reset factory must stop routing to the double")
}

func TestNewZerologIsUsable(t *testing.T) {
	l := NewZerolog("test")
	require.NotNil(t, l)
	l.Debug("no-op at default level")
}
