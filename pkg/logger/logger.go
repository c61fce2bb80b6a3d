package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Text handler for development, JSON for production
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithTraceID adds the provider trace ID to logger context
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("trace_id", traceID)),
	}
}

// WithBookingRef adds a booking reference to logger context
func (l *Logger) WithBookingRef(ref string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("booking_ref", ref)),
	}
}

// WithLeg adds a leg index to logger context
func (l *Logger) WithLeg(legIndex int) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.Int("leg_index", legIndex)),
	}
}

// WithError adds an error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
	)
}

// Business logic logging methods

// LogBookingSubmitted logs the start of a booking attempt
func (l *Logger) LogBookingSubmitted(ctx context.Context, tripType string, legs int) {
	l.Logger.InfoContext(ctx,
		"Booking Submitted",
		slog.String("trip_type", tripType),
		slog.Int("legs", legs),
	)
}

// LogLegTicketed logs a successfully issued leg
func (l *Logger) LogLegTicketed(ctx context.Context, legIndex int, pnr, bookingID string) {
	l.Logger.InfoContext(ctx,
		"Leg Ticketed",
		slog.Int("leg_index", legIndex),
		slog.String("pnr", pnr),
		slog.String("provider_booking_id", bookingID),
	)
}

// LogPartialFailure logs a multi-city booking that stopped mid-sequence
func (l *Logger) LogPartialFailure(ctx context.Context, failedAt int, ticketed int, reason string) {
	l.Logger.ErrorContext(ctx,
		"Partial Trip Failure",
		slog.Int("failed_at_leg", failedAt),
		slog.Int("legs_ticketed", ticketed),
		slog.String("reason", reason),
	)
}

// LogFallbackSuccess logs an issuance treated as success only because the
// provider response carried no error field. Monitored separately because the
// upstream success shape is not consistent.
func (l *Logger) LogFallbackSuccess(ctx context.Context, legIndex int) {
	l.Logger.WarnContext(ctx,
		"Issuance Fallback Success",
		slog.Int("leg_index", legIndex),
	)
}

// LogQuoteRefused logs a fare revalidation rejection
func (l *Logger) LogQuoteRefused(ctx context.Context, legIndex int, reason string) {
	l.Logger.WarnContext(ctx,
		"Fare Revalidation Refused",
		slog.Int("leg_index", legIndex),
		slog.String("reason", reason),
	)
}

// Helper methods for common patterns

// InfoWithContext logs an info message with context
func (l *Logger) InfoWithContext(ctx context.Context, msg string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.InfoContext(ctx, msg, args...)
}

// ErrorWithContext logs an error message with context
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	args = append(args, slog.String("error", err.Error()))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	l.Logger.ErrorContext(ctx, msg, args...)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
