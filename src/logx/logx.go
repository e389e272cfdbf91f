// Package logx is the zap-backed logger shared by the widget and its hosts.
package logx

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	// Named returns a child logger with name appended to the logger name.
	Named(name string) Logger
	Sync() error
}

// LevelSetter is implemented by loggers whose level can change at runtime.
type LevelSetter interface {
	SetLevel(lvl string)
}

// Logx is a sugared zap logger. Children made with Named share the level of
// their parent, so SetLevel on any of them affects the whole tree.
type Logx struct {
	*zap.SugaredLogger
	level zap.AtomicLevel
}

// NewLogx builds a logger writing to w, or to stdout in console mode or when
// w is nil. dev selects zap's development encoder config.
func NewLogx(lvl zapcore.Level, dev bool, console bool, w io.Writer) *Logx {
	var sink zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)
	if !console && w != nil {
		sink = zapcore.AddSync(w)
	}

	cfg := zap.NewProductionEncoderConfig()
	if dev {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.TimeKey, cfg.LevelKey, cfg.NameKey = "TIME", "LEVEL", "NAME"
	cfg.CallerKey, cfg.MessageKey = "CALLER", "MESSAGE"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	enc := zapcore.NewJSONEncoder(cfg)
	if console {
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	level := zap.NewAtomicLevelAt(lvl)
	core := zapcore.NewCore(enc, sink, level)
	return &Logx{
		SugaredLogger: zap.New(core, zap.AddCaller()).Sugar(),
		level:         level,
	}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logx {
	return &Logx{SugaredLogger: zap.NewNop().Sugar(), level: zap.NewAtomicLevelAt(zapcore.FatalLevel)}
}

// GetLoggerLevelByString parses a zap level name; unknown names give debug.
func GetLoggerLevelByString(lvl string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(lvl)))
	if err != nil {
		return zapcore.DebugLevel
	}
	return level
}

func (l *Logx) Named(name string) Logger {
	return &Logx{SugaredLogger: l.SugaredLogger.Named(name), level: l.level}
}

func (l *Logx) SetLevel(lvl string) {
	l.level.SetLevel(GetLoggerLevelByString(lvl))
}
