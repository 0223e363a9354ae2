package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedContext returns a context carrying an observed logger and the
// sink recording its entries.
func newObservedContext() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))
	return ctx, logs
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected fallback logger for empty context")
	}
	if FromContext(nil) == nil { //nolint:staticcheck // testing nil context handling
		t.Fatal("expected fallback logger for nil context")
	}
}

func TestFromContextReturnsScopedLogger(t *testing.T) {
	ctx, logs := newObservedContext()

	FromContext(ctx).Info("scoped entry")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
	if got := logs.All()[0].Message; got != "scoped entry" {
		t.Errorf("expected message 'scoped entry', got %q", got)
	}
}

func TestLogInfoWritesEntry(t *testing.T) {
	ctx, logs := newObservedContext()

	LogInfo(ctx, "info entry", zap.String("key", "value"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != zap.InfoLevel {
		t.Errorf("expected info level, got %v", entry.Level)
	}
	fields := entry.ContextMap()
	if fields["key"] != "value" {
		t.Errorf("expected key=value field, got %v", fields)
	}
}

func TestLogWarnWritesEntry(t *testing.T) {
	ctx, logs := newObservedContext()

	LogWarn(ctx, "warn entry")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Errorf("expected warn level, got %v", entries[0].Level)
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	ctx, logs := newObservedContext()

	LogError(ctx, "error entry", errors.New("boom"), zap.Int("attempt", 2))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != zap.ErrorLevel {
		t.Errorf("expected error level, got %v", entry.Level)
	}
	fields := entry.ContextMap()
	if fields["error"] != "boom" {
		t.Errorf("expected error field 'boom', got %v", fields["error"])
	}
	if fields["attempt"] != int64(2) {
		t.Errorf("expected attempt field, got %v", fields["attempt"])
	}
}

func TestLogErrorWithNilError(t *testing.T) {
	ctx, logs := newObservedContext()

	LogError(ctx, "no underlying error", nil)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["error"]; ok {
		t.Error("expected no error field when err is nil")
	}
}

func TestLogFatalAppendsErrorField(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic))
	ctx := contextWithLogger(context.Background(), logger)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic triggered by fatal hook")
		}

		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		entry := entries[0]
		if entry.Level != zapcore.FatalLevel {
			t.Errorf("expected fatal level, got %v", entry.Level)
		}
		if entry.ContextMap()["error"] != "boom" {
			t.Errorf("expected error field 'boom', got %v", entry.ContextMap())
		}
	}()

	LogFatal(ctx, "fatal failure", errors.New("boom"))
}
