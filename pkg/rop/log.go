package rop

import (
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/rop/core"
)

var logger atomic.Pointer[slog.Logger]

// SetLogger installs the logger used to report panics swallowed by Tap and
// TapErr. Passing nil restores the default, which discards everything.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the installed diagnostic logger.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return discard
}

var discard = slog.New(slog.DiscardHandler)

// observe runs a best-effort side effect. Nothing it raises reaches the
// caller.
func observe(op string, node uuid.UUID, fn func()) {
	recovered, panicked := core.Guard(fn)
	if !panicked {
		return
	}

	attrs := []any{slog.String("op", op), slog.Any("panic", recovered)}
	if node != uuid.Nil {
		attrs = append(attrs, slog.String("node", node.String()))
	}
	Logger().Debug("rop: side effect panicked", attrs...)
}
