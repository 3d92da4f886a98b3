package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

type logger struct {
	zapLogger *zap.Logger
}

var (
	mu           sync.RWMutex
	globalLogger = &logger{zapLogger: zap.NewNop()}
	dynamicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init builds the global logger. Level is one of debug, info, warn, error.
func Init(levelStr string, asJSON bool) error {
	if err := SetLevel(levelStr); err != nil {
		return err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if asJSON {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), dynamicLevel)

	mu.Lock()
	globalLogger = &logger{
		zapLogger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)),
	}
	mu.Unlock()

	return nil
}

func SetLevel(levelStr string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(levelStr))); err != nil {
		return err
	}
	dynamicLevel.SetLevel(lvl)
	return nil
}

// SetNopLogger silences the global logger. Used by tests.
func SetNopLogger() {
	mu.Lock()
	globalLogger = &logger{zapLogger: zap.NewNop()}
	mu.Unlock()
}

func L() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func With(fields ...Field) *logger {
	return L().With(fields...)
}

// WithRequestID stores the request id so every log line written with ctx carries it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{zapLogger: l.zapLogger.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Debug(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Info(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Warn(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Error(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *logger) Sync() error {
	return l.zapLogger.Sync()
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	L().Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	L().Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	L().Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	L().Error(ctx, msg, fields...)
}

func fieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return []Field{zap.String("request_id", id)}
	}
	return nil
}

// NoopLogger satisfies the small Logger interfaces of helper packages.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
