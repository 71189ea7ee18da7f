package sketch

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DefaultMaxGIFFrames bounds the frames a GIFSink holds before encoding.
const DefaultMaxGIFFrames = 240

// GIFSink buffers every Stride-th frame and encodes an animated GIF on Close.
// When more than MaxFrames are buffered, every other frame is dropped and
// Stride doubles, so memory stays bounded and playback keeps its length.
type GIFSink struct {
	Path      string
	Stride    int
	Delay     int // hundredths of a second per source frame
	MaxFrames int

	anim gif.GIF
}

// NewGIFSink returns a looping GIF writer. fps sets the playback delay.
func NewGIFSink(path string, fps, stride int) *GIFSink {
	if stride < 1 {
		stride = 1
	}
	delay := 2
	if fps > 0 {
		delay = 100 / fps
		if delay < 1 {
			delay = 1
		}
	}
	return &GIFSink{
		Path:      path,
		Stride:    stride,
		Delay:     delay,
		MaxFrames: DefaultMaxGIFFrames,
		anim:      gif.GIF{LoopCount: 0},
	}
}

func (g *GIFSink) WriteFrame(frame int, img image.Image) error {
	if frame%g.Stride != 0 {
		return nil
	}
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.Draw(pal, b, img, b.Min, draw.Src)
	g.anim.Image = append(g.anim.Image, pal)
	g.anim.Delay = append(g.anim.Delay, g.Delay*g.Stride)

	if g.MaxFrames > 0 && len(g.anim.Image) > g.MaxFrames {
		g.decimate()
	}
	return nil
}

// decimate keeps the even buffered frames, which are the multiples of the
// doubled stride.
func (g *GIFSink) decimate() {
	g.Stride *= 2
	n := 0
	for i := 0; i < len(g.anim.Image); i += 2 {
		g.anim.Image[n] = g.anim.Image[i]
		g.anim.Delay[n] = g.Delay * g.Stride
		n++
	}
	clear(g.anim.Image[n:])
	g.anim.Image = g.anim.Image[:n]
	g.anim.Delay = g.anim.Delay[:n]

	log.Debug().Str("path", g.Path).Int("stride", g.Stride).Int("frames", n).Msg("gif frames decimated")
}

func (g *GIFSink) Frames() int { return len(g.anim.Image) }

func (g *GIFSink) Close() error {
	if len(g.anim.Image) == 0 {
		return nil
	}
	f, err := os.Create(g.Path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}

	if err := gif.EncodeAll(f, &g.anim); err != nil {
		f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close gif: %w", err)
	}
	log.Info().Str("path", g.Path).Int("frames", len(g.anim.Image)).Int("stride", g.Stride).Msg("gif written")
	return nil
}

// PNGSink writes every Stride-th frame as Dir/frame_NNNNN.png.
type PNGSink struct {
	Dir     string
	Stride  int
	written int
}

func NewPNGSink(dir string, stride int) (*PNGSink, error) {
	if stride < 1 {
		stride = 1
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &PNGSink{Dir: dir, Stride: stride}, nil
}

func (p *PNGSink) WriteFrame(frame int, img image.Image) error {
	if frame%p.Stride != 0 {
		return nil
	}
	path := filepath.Join(p.Dir, fmt.Sprintf("frame_%05d.png", frame))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	p.written++
	return f.Close()
}

func (p *PNGSink) Close() error {
	log.Info().Str("dir", p.Dir).Int("frames", p.written).Msg("png frames written")
	return nil
}
