package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfigLevels(t *testing.T) {
	if !Config(true).Level.Enabled(zapcore.DebugLevel) {
		t.Error("debug config should enable debug level")
	}
	if Config(false).Level.Enabled(zapcore.DebugLevel) {
		t.Error("production config should not enable debug level")
	}
	if got := Config(false).OutputPaths; len(got) != 1 || got[0] != "stderr" {
		t.Errorf("OutputPaths = %v, want [stderr]", got)
	}
}

func TestSetupReplacesGlobals(t *testing.T) {
	previous := zap.L()
	defer zap.ReplaceGlobals(previous)

	logger, err := Setup(false, "foldersnap", "test")
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("Setup returned a nil logger")
	}
	if zap.L() != logger {
		t.Error("Setup did not install the logger as the zap global")
	}
}
