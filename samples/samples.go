// Package samples flattens images into row-major streams of 8-bit channel
// samples and rebuilds images from them.
//
// The channel layout is chosen so that an image written by the standard
// encoders reads back with the same layout:
//
//	gray (including 16-bit and gray palettes)  1 sample per pixel: Y
//	opaque color                               3 samples per pixel: R, G, B
//	color with transparency                    4 samples per pixel: R, G, B, A (non-premultiplied)
//
// 16-bit images are reduced to 8 bits.
package samples

import (
	"image"
	"image/color"
)

// Stream is a flat sample buffer together with the shape needed to rebuild the image.
type Stream struct {
	bounds        image.Rectangle
	width, height int
	channels      int

	// Samples is ordered by row, then column, then channel.
	Samples []uint8
}

// New wraps an existing buffer. It panics if the buffer length does not
// match the shape.
func New(bounds image.Rectangle, channels int, buf []uint8) *Stream {
	s := &Stream{
		bounds:   bounds,
		width:    bounds.Dx(),
		height:   bounds.Dy(),
		channels: channels,
		Samples:  buf,
	}
	if channels != 1 && channels != 3 && channels != 4 {
		panic("samples: channels must be 1, 3 or 4")
	}
	if len(buf) != s.width*s.height*channels {
		panic("samples: buffer length does not match shape")
	}
	return s
}

// FromImage flattens src.
func FromImage(src image.Image) *Stream {
	var s Stream
	s.bounds = src.Bounds()
	s.width, s.height = s.bounds.Dx(), s.bounds.Dy()
	s.channels = ChannelsOf(src)
	s.Samples = make([]uint8, s.width*s.height*s.channels)

	idx := 0
	for y := range s.height {
		for x := range s.width {
			c := src.At(s.bounds.Min.X+x, s.bounds.Min.Y+y)
			if s.channels == 1 {
				s.Samples[idx] = color.GrayModel.Convert(c).(color.Gray).Y
				idx++
				continue
			}
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			s.Samples[idx], s.Samples[idx+1], s.Samples[idx+2] = n.R, n.G, n.B
			if s.channels == 4 {
				s.Samples[idx+3] = n.A
			}
			idx += s.channels
		}
	}
	return &s
}

// ChannelsOf returns the number of samples per pixel FromImage uses for src.
func ChannelsOf(src image.Image) int {
	switch m := src.ColorModel(); m {
	case color.GrayModel, color.Gray16Model:
		return 1
	default:
		if p, ok := m.(color.Palette); ok && grayPalette(p) {
			return 1
		}
	}
	if opaque(src) {
		return 3
	}
	return 4
}

// Image rebuilds an *image.Gray for one channel, otherwise an *image.NRGBA.
func (s *Stream) Image() image.Image {
	if s.channels == 1 {
		dist := image.NewGray(s.bounds)
		for y := range s.height {
			copy(dist.Pix[y*dist.Stride:y*dist.Stride+s.width], s.Samples[y*s.width:(y+1)*s.width])
		}
		return dist
	}

	dist := image.NewNRGBA(s.bounds)
	idx := 0
	for y := range s.height {
		for x := range s.width {
			i := dist.PixOffset(s.bounds.Min.X+x, s.bounds.Min.Y+y)
			dist.Pix[i], dist.Pix[i+1], dist.Pix[i+2] = s.Samples[idx], s.Samples[idx+1], s.Samples[idx+2]
			dist.Pix[i+3] = 0xff
			if s.channels == 4 {
				dist.Pix[i+3] = s.Samples[idx+3]
			}
			idx += s.channels
		}
	}
	return dist
}

// Copy returns a Stream with its own sample buffer.
func (s *Stream) Copy() *Stream {
	c := *s
	c.Samples = make([]uint8, len(s.Samples))
	_ = copy(c.Samples, s.Samples)
	return &c
}

func (s *Stream) Bounds() image.Rectangle { return s.bounds }

func (s *Stream) Channels() int { return s.channels }

func (s *Stream) Len() int { return len(s.Samples) }

func opaque(src image.Image) bool {
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := src.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

func grayPalette(p color.Palette) bool {
	for _, c := range p {
		r, g, b, a := c.RGBA()
		if r != g || g != b || a != 0xffff {
			return false
		}
	}
	return len(p) > 0
}
