package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLevelByString(t *testing.T) {
	if GetLoggerLevelByString("warn") != zapcore.WarnLevel {
		t.Fatal("warn level")
	}
	if GetLoggerLevelByString("verbose") != zapcore.DebugLevel {
		t.Fatal("unknown level must fall back to debug")
	}
}

func TestJSONOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false, &buf)
	l.Debug("hidden")
	l.Named("board").Infof("commit %s", "e2e4")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked: %s", out)
	}
	if !strings.Contains(out, `"MESSAGE":"commit e2e4"`) || !strings.Contains(out, `"NAME":"board"`) {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNopDiscards(t *testing.T) {
	l := NewNop()
	l.Info("nothing")
	l.Named("x").Warnf("%d", 1)
}

func TestSetLevelReachesChildren(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.WarnLevel, false, false, &buf)
	child := l.Named("board")
	child.Debug("before")
	l.SetLevel("debug")
	child.Debug("after")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "before") || !strings.Contains(out, "after") {
		t.Fatalf("level change not shared: %s", out)
	}
	if GetLoggerLevelByString(" INFO ") != zapcore.InfoLevel {
		t.Fatal("level names are case and space insensitive")
	}
}

func TestCallerPointsAtCallSite(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.DebugLevel, false, false, &buf)
	l.Info("here")
	_ = l.Sync()
	if !strings.Contains(buf.String(), "logx_test.go") {
		t.Fatalf("caller is not the test file: %s", buf.String())
	}
}
