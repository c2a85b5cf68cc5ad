package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is re-exported so callers never import zap directly.
type Field = zap.Field

var base = zap.NewNop()

type initOptions struct {
	level      zapcore.Level
	env        string
	withCaller bool
	callerSkip int
}

type InitOption func(*initOptions)

func WithLogEnvOption(env string) InitOption {
	return func(o *initOptions) { o.env = env }
}

func WithCaller(enabled bool) InitOption {
	return func(o *initOptions) { o.withCaller = enabled }
}

func AddCallerSkip(skip int) InitOption {
	return func(o *initOptions) { o.callerSkip = skip }
}

func DebugLogLevel() InitOption {
	return func(o *initOptions) { o.level = zapcore.DebugLevel }
}

func InfoLogLevel() InitOption {
	return func(o *initOptions) { o.level = zapcore.InfoLevel }
}

// Init builds the process-wide logger. Local env gets a console encoder,
// everything else emits JSON for the log collector.
func Init(appName string, opts ...InitOption) {
	fOpts := &initOptions{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(fOpts)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if fOpts.env == "local" || fOpts.env == "" {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), fOpts.level)

	zapOpts := []zap.Option{zap.Fields(zap.String("app", appName))}
	if fOpts.withCaller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(fOpts.callerSkip))
	}

	base = zap.New(core, zapOpts...)
}

// InitForTest swaps the logger for a no-op one. Call it from TestMain.
func InitForTest() {
	base = zap.NewNop()
}

// Base exposes the underlying zap logger for integrations (nrzap).
func Base() *zap.Logger {
	return base
}

func Sync() {
	_ = base.Sync()
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	base.Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	base.Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	base.Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	base.Error(msg, withCtx(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	base.Panic(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...interface{}) {
	base.Sugar().Fatalf(format, args...)
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if cid := GetCorrelationID(ctx); cid != "" {
		fields = append(fields, zap.String("correlationId", cid))
	}
	return fields
}
