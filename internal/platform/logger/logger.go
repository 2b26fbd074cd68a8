// Package logger provides a zerolog wrapper with opinionated defaults and
// request-scoped logging support
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"scotuspredict/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	Level        string
	Format       string
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
	File         FileOptions
}

// FileOptions enables a rotating file sink next to the primary writer when Path is set
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// FromEnv builds Options using the logging-free raw config view (no cycles)
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	fc := rc.Prefix("FILE_")
	return Options{
		Level:       strings.ToLower(rc.Get("LEVEL", "info")),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", "scotuspredict"),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
		File: FileOptions{
			Path:       fc.Get("PATH", ""),
			MaxSizeMB:  fc.GetInt("MAX_SIZE_MB", 50),
			MaxBackups: fc.GetInt("MAX_BACKUPS", 3),
			MaxAgeDays: fc.GetInt("MAX_AGE_DAYS", 14),
			Compress:   fc.GetBool("COMPRESS", true),
		},
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Get returns the process-wide root logger as a pointer
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init configures zerolog and builds the root logger, safe to call once
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		log := zerolog.New(buildWriter(opt)).Level(parseLevel(opt.Level)).With().Timestamp()

		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			log = log.Str("go_version", bi.GoVersion)
		}
		if opt.Service != "" {
			log = log.Str("service", opt.Service)
		}
		if opt.Component != "" {
			log = log.Str("component", opt.Component)
		}
		for k, v := range opt.StaticFields {
			log = log.Str(k, v)
		}

		l := log.Logger()
		if opt.WithCaller {
			l = l.With().Caller().Logger()
		}
		if opt.SampleEvery > 1 {
			l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}

		root.Store(&l)
		inited.Store(true)
	})
}

// buildWriter picks stdout or opt.Writer, applies the console format and fans out to the rotating file.
// The file always receives JSON lines.
func buildWriter(opt Options) io.Writer {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	if opt.File.Path == "" {
		return w
	}
	return zerolog.MultiLevelWriter(w, &lumberjack.Logger{
		Filename:   opt.File.Path,
		MaxSize:    opt.File.MaxSizeMB,
		MaxBackups: opt.File.MaxBackups,
		MaxAge:     opt.File.MaxAgeDays,
		Compress:   opt.File.Compress,
	})
}

// parseLevel supports string-only levels
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"req_id"}
	keyLang      = ctxKey{"lang"}
)

// WithRequest annotates ctx with common request-scoped fields
func WithRequest(ctx context.Context, reqID, lang string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if lang != "" {
		ctx = context.WithValue(ctx, keyLang, lang)
	}
	return ctx
}

// C returns a child logger enriched from ctx (request_id, lang)
func C(ctx context.Context) *Logger {
	builder := Get().With()
	if s, ok := ctx.Value(keyRequestID).(string); ok && s != "" {
		builder = builder.Str("request_id", s)
	}
	if s, ok := ctx.Value(keyLang).(string); ok && s != "" {
		builder = builder.Str("lang", s)
	}
	ll := builder.Logger()
	return &ll
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}
