package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/PratikS7412/Tower-Retrival-Time/pkg/requestid"
)

// StructuredLogger emits one log line per operation step with a consistent set of fields.
// It resolves the global zap logger lazily so it follows zap.ReplaceGlobals.
type StructuredLogger struct {
	name  string
	level zap.AtomicLevel
	ctx   context.Context
}

// NewDebugLogger returns a StructuredLogger whose step lines are logged at debug level.
func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{name: name}
}

// WithContext attaches ctx so the request id is logged with every line.
func (l *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	cp := *l
	cp.ctx = ctx
	return &cp
}

func (l *StructuredLogger) base() *zap.Logger {
	logger := zap.L().Named(l.name)
	if l.ctx != nil {
		if id := requestid.FromContext(l.ctx); id != "" {
			logger = logger.With(zap.String("request_id", id))
		}
	}
	return logger
}

// Operation starts building a tracer for a named operation.
func (l *StructuredLogger) Operation(name string) *OperationBuilder {
	return &OperationBuilder{logger: l, operation: name}
}

// OperationBuilder collects the fields every line of an operation carries.
type OperationBuilder struct {
	logger    *StructuredLogger
	operation string
	fields    []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

// Build starts the operation clock.
func (b *OperationBuilder) Build() *OperationTracer {
	fields := append([]zap.Field{zap.String("operation", b.operation)}, b.fields...)
	return &OperationTracer{
		logger: b.logger.base().With(fields...),
		start:  time.Now(),
	}
}

// OperationTracer logs the steps and the outcome of one operation.
type OperationTracer struct {
	logger *zap.Logger
	start  time.Time
}

// Step logs an intermediate stage at debug level.
func (t *OperationTracer) Step(name string) *LogLine {
	return &LogLine{tracer: t, msg: "step", fields: []zap.Field{zap.String("step", name)}, level: zap.DebugLevel}
}

// Success logs the completion of the operation at debug level.
func (t *OperationTracer) Success() *LogLine {
	return &LogLine{tracer: t, msg: "operation succeeded", level: zap.DebugLevel}
}

// Error logs the failure of the operation at error level.
func (t *OperationTracer) Error(err error) *LogLine {
	return &LogLine{tracer: t, msg: "operation failed", fields: []zap.Field{zap.Error(err)}, level: zap.ErrorLevel}
}

// LogLine is a pending log entry.
type LogLine struct {
	tracer *OperationTracer
	msg    string
	fields []zap.Field
	level  zapcore.Level
}

func (l *LogLine) WithString(key, value string) *LogLine {
	l.fields = append(l.fields, zap.String(key, value))
	return l
}

func (l *LogLine) WithInt(key string, value int) *LogLine {
	l.fields = append(l.fields, zap.Int(key, value))
	return l
}

func (l *LogLine) WithFloat(key string, value float64) *LogLine {
	l.fields = append(l.fields, zap.Float64(key, value))
	return l
}

func (l *LogLine) WithBool(key string, value bool) *LogLine {
	l.fields = append(l.fields, zap.Bool(key, value))
	return l
}

func (l *LogLine) WithUUID(key string, value uuid.UUID) *LogLine {
	l.fields = append(l.fields, zap.String(key, value.String()))
	return l
}

// Log writes the entry with the elapsed time of the operation.
func (l *LogLine) Log() {
	fields := append(l.fields, zap.Duration("elapsed", time.Since(l.tracer.start)))
	if ce := l.tracer.logger.Check(l.level, l.msg); ce != nil {
		ce.Write(fields...)
	}
}
