package alert

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

// ConsolePresenter writes one colored line per alert. Vital alerts are red, routine alerts cyan.
type ConsolePresenter struct {
	mu       sync.Mutex
	w        io.Writer
	critical *color.Color
	info     *color.Color
	stamp    *color.Color
}

var _ interfaces.AlertPresenter = &ConsolePresenter{}

type ConsoleOption func(*ConsolePresenter)

// WithWriter sets the output destination. Default is os.Stdout.
func WithWriter(w io.Writer) ConsoleOption {
	return func(p *ConsolePresenter) {
		p.w = w
	}
}

// WithoutColor disables ANSI escape sequences
func WithoutColor() ConsoleOption {
	return func(p *ConsolePresenter) {
		p.critical.DisableColor()
		p.info.DisableColor()
		p.stamp.DisableColor()
	}
}

func NewConsolePresenter(opts ...ConsoleOption) *ConsolePresenter {
	p := &ConsolePresenter{
		w:        os.Stdout,
		critical: color.New(color.FgRed, color.Bold),
		info:     color.New(color.FgCyan),
		stamp:    color.New(color.Faint),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ConsolePresenter) Present(ctx context.Context, alert model.Alert) {
	p.mu.Lock()
	defer p.mu.Unlock()

	label, c := "ROUTINE", p.info
	if alert.Severity == types.SeverityCritical {
		label, c = "VITAL", p.critical
	}

	if _, err := p.stamp.Fprintf(p.w, "[%s] ", alert.Minute.Format12h()); err != nil {
		logging.From(ctx).Warn("failed to write alert", "reminder_id", alert.ReminderID, "error", err)
		return
	}
	if _, err := c.Fprintf(p.w, "%-7s %s\n", label, alert.Title); err != nil {
		logging.From(ctx).Warn("failed to write alert", "reminder_id", alert.ReminderID, "error", err)
	}
}
