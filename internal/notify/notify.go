// Package notify prints one-shot user notices to the console and records
// them in the structured log at debug level.
package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/ukaji3/filetools-go/internal/logger"
)

// Kind classifies a notice.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

// Notifier writes notices to a console writer.
type Notifier struct {
	console io.Writer
	mu      sync.Mutex
}

// New creates a Notifier. A nil console selects stdout.
func New(console io.Writer) *Notifier {
	if console == nil {
		console = os.Stdout
	}
	return &Notifier{console: console}
}

// Notify prints a notice made of a title and an optional description.
func (n *Notifier) Notify(ctx context.Context, kind Kind, title, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	symbol, attr := decoration(kind)
	line := fmt.Sprintf("%s %s", symbol, color.New(attr, color.Bold).Sprint(title))
	if description != "" {
		line += " " + color.New(attr).Sprint(description)
	}
	fmt.Fprintln(n.console, line)

	// The console line is the user-facing copy; the log gets a debug record.
	kvs := []any{"kind", kind.String(), "title", title}
	if description != "" {
		kvs = append(kvs, "description", description)
	}
	logger.DebugKV(ctx, "notice", kvs...)
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Success prints a success notice.
func (n *Notifier) Success(ctx context.Context, title, description string) {
	n.Notify(ctx, KindSuccess, title, description)
}

// Info prints an informational notice.
func (n *Notifier) Info(ctx context.Context, title, description string) {
	n.Notify(ctx, KindInfo, title, description)
}

// Warning prints a warning notice.
func (n *Notifier) Warning(ctx context.Context, title, description string) {
	n.Notify(ctx, KindWarning, title, description)
}

// Error prints an error notice.
func (n *Notifier) Error(ctx context.Context, title, description string) {
	n.Notify(ctx, KindError, title, description)
}

func decoration(kind Kind) (string, color.Attribute) {
	switch kind {
	case KindSuccess:
		return "✅", color.FgGreen
	case KindWarning:
		return "⚠️ ", color.FgYellow
	case KindError:
		return "❌", color.FgRed
	default:
		return "ℹ️ ", color.FgCyan
	}
}
