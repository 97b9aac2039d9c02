package alert

import (
	"context"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/model"
)

// Fanout delivers each alert to every presenter in order
type Fanout []interfaces.AlertPresenter

var _ interfaces.AlertPresenter = Fanout{}

func (f Fanout) Present(ctx context.Context, alert model.Alert) {
	for _, p := range f {
		if p != nil {
			p.Present(ctx, alert)
		}
	}
}
