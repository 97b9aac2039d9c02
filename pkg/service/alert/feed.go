package alert

import (
	"context"
	"sync"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
)

// DefaultFeedSize is the number of alerts a Feed keeps when no size is given
const DefaultFeedSize = 50

// Feed keeps the most recent alerts in a fixed-size ring
type Feed struct {
	mu    sync.RWMutex
	buf   []model.Alert
	next  int
	count int
}

var _ interfaces.AlertPresenter = &Feed{}

// NewFeed creates a feed holding at most size alerts
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{
		buf: make([]model.Alert, size),
	}
}

func (f *Feed) Present(_ context.Context, alert model.Alert) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf[f.next] = alert
	f.next = (f.next + 1) % len(f.buf)
	if f.count < len(f.buf) {
		f.count++
	}
}

// Recent returns the stored alerts, newest first
func (f *Feed) Recent() []model.Alert {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]model.Alert, 0, f.count)
	for i := 1; i <= f.count; i++ {
		idx := (f.next - i + len(f.buf)) % len(f.buf)
		out = append(out, f.buf[idx])
	}
	return out
}
