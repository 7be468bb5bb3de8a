package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents different logging levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI        LogComponent = "api"
	ComponentDB         LogComponent = "database"
	ComponentAuth       LogComponent = "auth"
	ComponentCalculator LogComponent = "calculator"
	ComponentTaxpayer   LogComponent = "taxpayer"
	ComponentBatch      LogComponent = "batch"
	ComponentCLI        LogComponent = "cli"
	ComponentMiddleware LogComponent = "middleware"
	ComponentServer     LogComponent = "server"
)

// LogContext holds structured context information for logs
type LogContext struct {
	TaxpayerID    string
	CorrelationID string
	Component     LogComponent
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger provides logging with structured context. Taxpayer
// identifiers are written as fingerprints, never in clear.
type StructuredLogger struct {
	logger    *zap.Logger
	component LogComponent
	context   LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	base := Log
	if base == nil {
		base = zap.NewNop()
	}
	return &StructuredLogger{
		logger:    base,
		component: component,
		context:   LogContext{Component: component, Fields: make(map[string]interface{})},
	}
}

// WithField adds a field to the log context. Sensitive keys are redacted.
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	newLogger := sl.clone()
	if IsSensitiveKey(key) {
		value = Redacted
	}
	newLogger.context.Fields[key] = value
	return newLogger
}

// WithFields adds multiple fields to the log context
func (sl *StructuredLogger) WithFields(fields map[string]interface{}) *StructuredLogger {
	newLogger := sl
	for k, v := range fields {
		newLogger = newLogger.WithField(k, v)
	}
	return newLogger
}

// WithTaxpayer tags the log context with a taxpayer fingerprint
func (sl *StructuredLogger) WithTaxpayer(taxpayerID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.TaxpayerID = taxpayerID
	return newLogger
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.CorrelationID = correlationID
	return newLogger
}

// WithOperation adds operation name to the log context
func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Operation = operation
	return newLogger
}

// WithDuration adds duration to the log context
func (sl *StructuredLogger) WithDuration(duration time.Duration) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Duration = duration
	return newLogger
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	fields := make(map[string]interface{}, len(sl.context.Fields))
	for k, v := range sl.context.Fields {
		fields[k] = v
	}

	return &StructuredLogger{
		logger:    sl.logger,
		component: sl.component,
		context: LogContext{
			TaxpayerID:    sl.context.TaxpayerID,
			CorrelationID: sl.context.CorrelationID,
			Component:     sl.context.Component,
			Operation:     sl.context.Operation,
			Duration:      sl.context.Duration,
			Fields:        fields,
		},
	}
}

func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := []zapcore.Field{
		zap.String("component", string(sl.component)),
	}

	if sl.context.TaxpayerID != "" {
		fields = append(fields, TaxpayerRef(sl.context.TaxpayerID))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}

	for k, v := range sl.context.Fields {
		fields = append(fields, zap.Any(k, v))
	}

	return fields
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string) {
	sl.logger.Debug(msg, sl.buildFields()...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string) {
	sl.logger.Info(msg, sl.buildFields()...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string) {
	sl.logger.Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, fields...)
}

// LogOperation runs fn and logs its outcome and duration
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	opLogger := sl.WithOperation(operation)

	opLogger.Debug(fmt.Sprintf("Starting operation: %s", operation))

	err := fn()
	opLogger = opLogger.WithDuration(time.Since(start))

	if err != nil {
		opLogger.Error(fmt.Sprintf("Operation failed: %s", operation), err)
		return err
	}

	opLogger.Info(fmt.Sprintf("Operation completed: %s", operation))
	return nil
}

// LogHTTPRequest logs a completed request against its route template
func (sl *StructuredLogger) LogHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	sl.WithFields(map[string]interface{}{
		"method":      method,
		"route":       route,
		"status_code": statusCode,
	}).WithDuration(duration).Info("HTTP request completed")
}

// LogDatabaseQuery logs a store statement by name. Arguments are never logged.
func (sl *StructuredLogger) LogDatabaseQuery(statement string, duration time.Duration, rowsAffected int64) {
	sl.WithFields(map[string]interface{}{
		"statement":     statement,
		"rows_affected": rowsAffected,
	}).WithDuration(duration).Debug("Database query executed")
}

// LogCalculation logs the outcome of a calculation without any amounts. A rejected
// input is a warning.
func (sl *StructuredLogger) LogCalculation(taxpayerID, stateCode string, err error) {
	l := sl.WithTaxpayer(taxpayerID).WithField("state_code", stateCode)
	if err != nil {
		l.logger.Warn("Rejected tax calculation input", append(l.buildFields(), zap.Error(err))...)
		return
	}
	l.Info("Calculated tax")
}

// LogAuthEvent logs authentication and authorization decisions. Failures are warnings.
func (sl *StructuredLogger) LogAuthEvent(action, subject string, success bool, reason string) {
	l := sl.WithFields(map[string]interface{}{
		"action":  action,
		"subject": subject,
		"success": success,
	})
	if success {
		l.Info("Authentication event")
		return
	}
	l.WithField("reason", reason).Warn("Authentication event")
}

// Timer measures how long an operation takes
type Timer struct {
	logger    *StructuredLogger
	operation string
	start     time.Time
}

// NewTimer starts a timer for operationName
func (sl *StructuredLogger) NewTimer(operationName string) *Timer {
	return &Timer{
		logger:    sl.WithOperation(operationName),
		operation: operationName,
		start:     time.Now(),
	}
}

// StopWithResult logs the elapsed time and the outcome
func (t *Timer) StopWithResult(success bool, err error) {
	l := t.logger.WithDuration(time.Since(t.start)).WithField("success", success)
	if err != nil {
		l.Error(fmt.Sprintf("Timer: %s failed", t.operation), err)
		return
	}
	l.Debug(fmt.Sprintf("Timer: %s", t.operation))
}
