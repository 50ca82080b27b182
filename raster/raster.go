// Package raster reshapes flat sample bytes into image.Image values
// and back. It does no resampling or bit-depth conversion; it only
// rearranges 8-bit samples between interleaved, planar, and
// image-native layouts for the platform-codec adapters.
package raster

import (
	"image"
	"image/color"

	"github.com/cocosip/go-image-codec/codec"
)

// FromBytes builds an image from flat 8-bit sample data laid out
// according to opts (Width, Height, Channels, Interleaved). One
// channel yields a grayscale image, three channels an opaque RGB
// image.
func FromBytes(data []byte, opts *codec.CodecOptions) (image.Image, error) {
	if opts == nil || opts.Width <= 0 || opts.Height <= 0 {
		return nil, codec.ErrInvalidParameter
	}
	if opts.BitsPerSample > 8 {
		return nil, codec.ErrInvalidParameter
	}
	channels := opts.Channels
	if channels == 0 {
		channels = 1
	}
	if channels != 1 && channels != 3 {
		return nil, codec.ErrInvalidParameter
	}

	w, h := opts.Width, opts.Height
	if len(data) < w*h*channels {
		return nil, codec.ErrInvalidParameter
	}

	if channels == 1 {
		img := image.NewGray(image.Rect(0, 0, w, h))
		copy(img.Pix, data[:w*h])
		return img, nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	plane := w * h
	for i := 0; i < plane; i++ {
		var r, g, b byte
		if opts.Interleaved {
			r, g, b = data[i*3], data[i*3+1], data[i*3+2]
		} else {
			r, g, b = data[i], data[plane+i], data[2*plane+i]
		}
		img.Pix[i*4] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = 0xFF
	}
	return img, nil
}

// ToBytes flattens an image to 8-bit sample data. The channel count
// and layout follow opts (Channels, Interleaved, YCbCr); a zero
// Channels infers one channel for grayscale images and three
// otherwise. With YCbCr set and a native YCbCr image, raw luma/chroma
// samples are emitted instead of RGB.
func ToBytes(img image.Image, opts *codec.CodecOptions) ([]byte, error) {
	if img == nil {
		return nil, codec.ErrInvalidParameter
	}
	if opts == nil {
		opts = codec.DefaultOptions()
		opts.Channels = 0
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	channels := opts.Channels
	if channels == 0 {
		if isGrayscale(img) {
			channels = 1
		} else {
			channels = 3
		}
	}
	if channels != 1 && channels != 3 {
		return nil, codec.ErrInvalidParameter
	}

	out := make([]byte, w*h*channels)

	if channels == 1 {
		if gray, ok := img.(*image.Gray); ok {
			for y := 0; y < h; y++ {
				row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
				copy(out[y*w:], row)
			}
			return out, nil
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
				out[y*w+x] = g.Y
			}
		}
		return out, nil
	}

	ycbcr, _ := img.(*image.YCbCr)
	plane := w * h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var s0, s1, s2 byte
			if opts.YCbCr && ycbcr != nil {
				s0 = ycbcr.Y[ycbcr.YOffset(bounds.Min.X+x, bounds.Min.Y+y)]
				ci := ycbcr.COffset(bounds.Min.X+x, bounds.Min.Y+y)
				s1, s2 = ycbcr.Cb[ci], ycbcr.Cr[ci]
			} else {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				s0, s1, s2 = byte(r>>8), byte(g>>8), byte(b>>8)
			}
			i := y*w + x
			if opts.Interleaved {
				out[i*3], out[i*3+1], out[i*3+2] = s0, s1, s2
			} else {
				out[i], out[plane+i], out[2*plane+i] = s0, s1, s2
			}
		}
	}
	return out, nil
}

func isGrayscale(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}
	return false
}
