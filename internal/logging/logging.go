package logging

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLevel is the logr verbosity used for debug messages.
const DebugLevel = 1

// TimeLayout is the timestamp layout of every log line.
const TimeLayout = "15:04:05"

// Options configures a logger.
type Options struct {
	// Debug enables messages logged at V(DebugLevel).
	Debug bool
	// Output defaults to os.Stderr.
	Output io.Writer
	// Color forces colored levels on or off. Nil means colored levels are
	// used only when Output is a terminal.
	Color *bool
}

// New returns a logger configured by opts.
func New(opts Options) logr.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayout)
	encCfg.CallerKey = ""
	encCfg.StacktraceKey = ""
	encCfg.NameKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if useColor(out, opts.Color) {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), level)
	return zapr.NewLoggerWithOptions(zap.New(core), zapr.LogInfoLevel(""))
}

func useColor(out io.Writer, force *bool) bool {
	if force != nil {
		return *force
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
