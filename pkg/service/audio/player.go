// Package audio plays short notification tones for alerts.
package audio

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/interfaces"
	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/async"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
	"github.com/Anuja-3248/VitaGaurd/pkg/utils/safe"
)

// ErrPlayback is returned when a tone cannot be played. Callers treat it as non-fatal.
var ErrPlayback = goerr.New("audio playback failed")

const readyTimeout = 3 * time.Second

// oto allows one context per process
var (
	globalCtx     *oto.Context
	globalCtxErr  error
	globalCtxOnce sync.Once
)

func initContext(sampleRate int) (*oto.Context, error) {
	globalCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}

		otoCtx, readyChan, err := oto.NewContext(op)
		if err != nil {
			globalCtxErr = goerr.Wrap(ErrPlayback, err.Error(), goerr.V("sample_rate", sampleRate))
			return
		}

		select {
		case <-readyChan:
			globalCtx = otoCtx
		case <-time.After(readyTimeout):
			globalCtxErr = goerr.Wrap(ErrPlayback, "audio device not ready", goerr.V("timeout", readyTimeout))
		}
	})
	return globalCtx, globalCtxErr
}

// TonePlayer plays synthesized tones through the system audio device.
// The device is opened on the first Play.
type TonePlayer struct {
	sampleRate int
}

var _ interfaces.AudioPlayer = &TonePlayer{}

func NewTonePlayer() *TonePlayer {
	return &TonePlayer{sampleRate: DefaultSampleRate}
}

// Play starts the tone for severity and returns without waiting for it to finish
func (p *TonePlayer) Play(ctx context.Context, severity types.Severity) error {
	otoCtx, err := initContext(p.sampleRate)
	if err != nil {
		return err
	}

	player := otoCtx.NewPlayer(bytes.NewReader(Tone(severity, p.sampleRate)))
	player.Play()

	async.Dispatch(ctx, func(ctx context.Context) error {
		defer safe.Close(ctx, player)
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Err(); err != nil {
			return goerr.Wrap(ErrPlayback, err.Error(), goerr.V("severity", severity))
		}
		logging.From(ctx).Debug("tone played", "severity", severity)
		return nil
	})

	return nil
}

// Nop discards every tone. It is used when audio is disabled.
type Nop struct{}

var _ interfaces.AudioPlayer = Nop{}

func (Nop) Play(context.Context, types.Severity) error {
	return nil
}
