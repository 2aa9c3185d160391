package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	sugar  = zap.NewNop().Sugar()
	levels = map[string]zapcore.Level{
		"debug": zap.DebugLevel,
		"info":  zap.InfoLevel,
		"warn":  zap.WarnLevel,
		"error": zap.ErrorLevel,
	}
)

// Init builds the process-wide logger. Production writes JSON, everything else
// uses the console encoder.
func Init(level, env string) {
	logLevel, ok := levels[level]
	if !ok {
		logLevel = zap.InfoLevel
	}

	encoding := "console"
	encodeLevel := zapcore.CapitalColorLevelEncoder
	if env == "production" {
		encoding = "json"
		encodeLevel = zapcore.LowercaseLevelEncoder
	}

	cfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(logLevel),
		Encoding: encoding,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    encodeLevel,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}

	mu.Lock()
	sugar = l.Sugar()
	mu.Unlock()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

// pairs keeps key/value arguments even. A trailing value without a key, as in
// logger.Error("msg", err), is logged under "detail".
func pairs(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	out := make([]any, 0, len(args)+1)
	out = append(out, args[:len(args)-1]...)
	return append(out, "detail", args[len(args)-1])
}

func Debug(msg string, args ...any) {
	current().Debugw(msg, pairs(args)...)
}

func Info(msg string, args ...any) {
	current().Infow(msg, pairs(args)...)
}

func Warn(msg string, args ...any) {
	current().Warnw(msg, pairs(args)...)
}

func Error(msg string, args ...any) {
	current().Errorw(msg, pairs(args)...)
}

func Sync() error {
	return current().Sync()
}
