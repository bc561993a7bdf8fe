package logger

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
)

// DefaultTimeLayout is the record timestamp layout (YYYY-MM-DD HH:mm:ss)
const DefaultTimeLayout = "2006-01-02 15:04:05"

// defaultLevelWidth pads level labels so that messages line up
const defaultLevelWidth = 8

var linePool = buffer.NewPool()

// LineEncoderConfig configures the single-line record layout
type LineEncoderConfig struct {
	TimeLayout string
	LevelWidth int
	Colorize   bool
}

// lineEncoder renders records as
//
//	2024-01-02 15:04:05 | INFO     | demo:(*Runner).Run:42 - message {"extra":"fields"}
//
// followed by the traceback field, if any, on its own lines.
// Structured context added through With is held by the embedded JSON encoder.
type lineEncoder struct {
	zapcore.Encoder
	cfg LineEncoderConfig
	au  aurora.Aurora
}

// NewLineEncoder creates the record encoder used by every sink
func NewLineEncoder(cfg LineEncoderConfig) zapcore.Encoder {
	if cfg.TimeLayout == "" {
		cfg.TimeLayout = DefaultTimeLayout
	}
	if cfg.LevelWidth <= 0 {
		cfg.LevelWidth = defaultLevelWidth
	}
	return &lineEncoder{
		Encoder: zapcore.NewJSONEncoder(zapcore.EncoderConfig{
			SkipLineEnding: true,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
		}),
		cfg: cfg,
		au:  aurora.NewAurora(cfg.Colorize),
	}
}

func (e *lineEncoder) Clone() zapcore.Encoder {
	return &lineEncoder{
		Encoder: e.Encoder.Clone(),
		cfg:     e.cfg,
		au:      e.au,
	}
}

func (e *lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	level := fromZapLevel(ent.Level)
	line := linePool.Get()

	line.AppendString(e.au.Green(ent.Time.Format(e.cfg.TimeLayout)).String())
	line.AppendString(" | ")
	line.AppendString(e.colorLevel(level, fmt.Sprintf("%-*s", e.cfg.LevelWidth, level.String())))
	line.AppendString(" | ")
	e.appendCaller(line, ent)
	line.AppendString(" - ")
	line.AppendString(e.colorLevel(level, ent.Message))

	var traceback string
	rest := make([]zapcore.Field, 0, len(fields))
	for _, f := range fields {
		if f.Key == core.FieldTraceback && f.Type == zapcore.StringType {
			traceback = f.String
			continue
		}
		rest = append(rest, f)
	}

	extra, err := e.Encoder.EncodeEntry(zapcore.Entry{}, rest)
	if err != nil {
		line.Free()
		return nil, err
	}
	if extra.Len() > len("{}") {
		line.AppendByte(' ')
		_, _ = line.Write(extra.Bytes())
	}
	extra.Free()

	if traceback != "" {
		line.AppendByte('\n')
		line.AppendString(strings.TrimRight(traceback, "\n"))
	}
	line.AppendByte('\n')
	return line, nil
}

func (e *lineEncoder) appendCaller(line *buffer.Buffer, ent zapcore.Entry) {
	if !ent.Caller.Defined {
		name := ent.LoggerName
		if name == "" {
			name = "?"
		}
		line.AppendString(e.au.Cyan(name).String())
		return
	}

	pkg, fn := splitFunction(ent.Caller.Function)
	line.AppendString(e.au.Cyan(pkg).String())
	line.AppendByte(':')
	line.AppendString(e.au.Cyan(fn).String())
	line.AppendByte(':')
	line.AppendString(e.au.Cyan(strconv.Itoa(ent.Caller.Line)).String())
}

func (e *lineEncoder) colorLevel(level core.LogLevel, s string) string {
	switch level {
	case core.LogLevelTrace:
		return e.au.Cyan(s).Bold().String()
	case core.LogLevelDebug:
		return e.au.Blue(s).Bold().String()
	case core.LogLevelInfo:
		return e.au.Bold(s).String()
	case core.LogLevelSuccess:
		return e.au.Green(s).Bold().String()
	case core.LogLevelWarn:
		return e.au.Yellow(s).Bold().String()
	case core.LogLevelError:
		return e.au.Red(s).Bold().String()
	case core.LogLevelCritical:
		return e.au.BgRed(s).Bold().String()
	default:
		return s
	}
}

// splitFunction splits a runtime function name such as
// "example.com/app/internal/demo.(*Runner).Run" into "demo" and "(*Runner).Run".
func splitFunction(full string) (pkg, fn string) {
	if full == "" {
		return "?", "?"
	}
	lastSlash := strings.LastIndexByte(full, '/')
	dot := strings.IndexByte(full[lastSlash+1:], '.')
	if dot < 0 {
		return path.Base(full), "?"
	}
	dot += lastSlash + 1
	return path.Base(full[:dot]), full[dot+1:]
}
