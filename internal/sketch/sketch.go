package sketch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/san-kum/sketchlab/internal/render"
)

// Sketch is a setup/draw pair. Setup runs once before the first frame and
// Draw once per frame, never concurrently.
type Sketch interface {
	Name() string
	Setup(s render.Surface) error
	Draw(s render.Surface)
}

// Imager is a surface whose pixels can be captured after a frame.
type Imager interface {
	Image() image.Image
}

// FrameSink consumes rendered frames.
type FrameSink interface {
	WriteFrame(frame int, img image.Image) error
	Close() error
}

var ErrNotRaster = errors.New("sketch: frame sinks need a raster surface")

// Host owns a sketch and its surface and drives the frame loop.
type Host struct {
	sketch  Sketch
	surface render.Surface
	frame   int
	ready   bool

	// Pace, when positive, holds each frame to at least this long.
	Pace time.Duration
}

func NewHost(sk Sketch, surface render.Surface) *Host {
	return &Host{sketch: sk, surface: surface}
}

func (h *Host) Sketch() Sketch          { return h.sketch }
func (h *Host) Surface() render.Surface { return h.surface }
func (h *Host) Frame() int              { return h.frame }

// Setup (re)initialises the sketch and rewinds the frame counter.
func (h *Host) Setup() error {
	if err := h.sketch.Setup(h.surface); err != nil {
		return fmt.Errorf("%s setup: %w", h.sketch.Name(), err)
	}
	h.frame = 0
	h.ready = true
	return nil
}

// Step draws one frame, running Setup first if needed.
func (h *Host) Step() error {
	if !h.ready {
		if err := h.Setup(); err != nil {
			return err
		}
	}
	h.sketch.Draw(h.surface)
	h.frame++
	return nil
}

// Run draws frames until ctx is done or, when frames > 0, that many frames
// were drawn. Each frame is handed to every sink; sinks are closed on return.
func (h *Host) Run(ctx context.Context, frames int, sinks ...FrameSink) (err error) {
	var imager Imager
	if len(sinks) > 0 {
		var ok bool
		if imager, ok = h.surface.(Imager); !ok {
			return ErrNotRaster
		}
	}
	defer func() {
		for _, s := range sinks {
			if cerr := s.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	var tick <-chan time.Time
	if h.Pace > 0 {
		t := time.NewTicker(h.Pace)
		defer t.Stop()
		tick = t.C
	}

	start := time.Now()
	for frames <= 0 || h.frame < frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := h.Step(); err != nil {
			return err
		}
		for _, s := range sinks {
			if err := s.WriteFrame(h.frame-1, imager.Image()); err != nil {
				return fmt.Errorf("frame %d: %w", h.frame-1, err)
			}
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
	}

	log.Debug().
		Str("sketch", h.sketch.Name()).
		Int("frames", h.frame).
		Dur("elapsed", time.Since(start)).
		Msg("run finished")
	return nil
}
