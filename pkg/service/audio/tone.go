package audio

import (
	"encoding/binary"
	"math"

	"github.com/Anuja-3248/VitaGaurd/pkg/domain/types"
)

const (
	// DefaultSampleRate is the PCM sample rate of synthesized tones
	DefaultSampleRate = 44100

	bytesPerSample = 2
	amplitude      = 0.35
	fadeDuration   = 0.005
)

type pulse struct {
	freq     float64
	duration float64 // seconds
	gap      float64 // silence after the pulse, seconds
}

// pattern returns the pulses for a severity. Critical alerts get two short high pulses.
func pattern(severity types.Severity) []pulse {
	if severity == types.SeverityCritical {
		return []pulse{
			{freq: 1320, duration: 0.15, gap: 0.1},
			{freq: 1320, duration: 0.15},
		}
	}
	return []pulse{
		{freq: 880, duration: 0.25},
	}
}

// Tone synthesizes mono signed 16-bit little-endian PCM for the severity
func Tone(severity types.Severity, sampleRate int) []byte {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	var total int
	pulses := pattern(severity)
	for _, p := range pulses {
		total += samples(p.duration, sampleRate) + samples(p.gap, sampleRate)
	}

	buf := make([]byte, 0, total*bytesPerSample)
	fade := samples(fadeDuration, sampleRate)

	for _, p := range pulses {
		n := samples(p.duration, sampleRate)
		for i := range n {
			gain := 1.0
			if i < fade {
				gain = float64(i) / float64(fade)
			} else if n-i < fade {
				gain = float64(n-i) / float64(fade)
			}
			v := math.Sin(2*math.Pi*p.freq*float64(i)/float64(sampleRate)) * amplitude * gain
			buf = binary.LittleEndian.AppendUint16(buf, uint16(int16(v*math.MaxInt16)))
		}

		silence := samples(p.gap, sampleRate)
		buf = append(buf, make([]byte, silence*bytesPerSample)...)
	}

	return buf
}

func samples(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}
