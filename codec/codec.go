package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// Format selects the container used when saving a pixel buffer.
type Format int

const (
	Png Format = iota
	Bmp
	Jpeg
)

func (f Format) String() string {
	switch f {
	case Png:
		return "png"
	case Bmp:
		return "bmp"
	case Jpeg:
		return "jpeg"
	}
	return "unknown"
}

// ParseFormat maps a format name (or file extension) to a Format.
func ParseFormat( name string ) (Format, error) {
	switch name {
	case "png":
		return Png, nil
	case "bmp":
		return Bmp, nil
	case "jpeg", "jpg":
		return Jpeg, nil
	}
	return Png, fmt.Errorf("Unsupported output format: %s", name)
}

/*
 * PixelBuffer is a flat RGB view of a decoded image. Three bytes
 * per pixel, row-major. Alpha is dropped on load and restored as
 * opaque on save.
 */
type PixelBuffer struct {
	width	int
	height	int
	pix	[]byte
}

func NewPixelBuffer( width, height int ) *PixelBuffer {
	return &PixelBuffer{
		width: width,
		height: height,
		pix: make([]byte, width * height * 3),
	}
}

// FromImage converts any decoded image into an RGB pixel buffer.
func FromImage( img image.Image ) *PixelBuffer {
	bounds := img.Bounds()
	width, height := bounds.Max.X, bounds.Max.Y
	p := NewPixelBuffer( width, height )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At( x, y ).RGBA()
			i := (y * width + x) * 3
			p.pix[i] = uint8(r >> 8)
			p.pix[i+1] = uint8(g >> 8)
			p.pix[i+2] = uint8(b >> 8)
		}
	}
	return p
}

func (p *PixelBuffer) Width() int {
	return p.width
}

func (p *PixelBuffer) Height() int {
	return p.height
}

func (p *PixelBuffer) ChannelAt( x, y, channel int ) byte {
	return p.pix[ (y * p.width + x) * 3 + channel ]
}

func (p *PixelBuffer) SetChannelAt( x, y, channel int, value byte ) {
	p.pix[ (y * p.width + x) * 3 + channel ] = value
}

// PixelAt returns the three channel bytes of one pixel.
func (p *PixelBuffer) PixelAt( x, y int ) [3]byte {
	i := (y * p.width + x) * 3
	return [3]byte{ p.pix[i], p.pix[i+1], p.pix[i+2] }
}

func (p *PixelBuffer) Clone() *PixelBuffer {
	clone := NewPixelBuffer( p.width, p.height )
	copy( clone.pix, p.pix )
	return clone
}

// Image rebuilds a stdlib image from the buffer for re-encoding.
func (p *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA( image.Rect( 0, 0, p.width, p.height ) )
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			i := (y * p.width + x) * 3
			img.Set( x, y, color.RGBA{ p.pix[i], p.pix[i+1], p.pix[i+2], 0xff } )
		}
	}
	return img
}

// Load sniffs the container by magic bytes and decodes it into a
// pixel buffer. GIF carriers are accepted on input even though Save
// only targets lossless-friendly containers.
func Load( data []byte ) (*PixelBuffer, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("Unsupported image format.")
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a {
		// a png image
		img, err := png.Decode( bytes.NewReader( data ) )
		if err != nil {
			return nil, err
		}
		return FromImage( img ), nil
	}
	if data[0] == 0x42 && data[1] == 0x4d {
		// bmp image
		img, err := bmp.Decode( bytes.NewReader( data ) )
		if err != nil {
			return nil, err
		}
		return FromImage( img ), nil
	}
	if data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff {
		// a jpeg image
		img, err := jpeg.Decode( bytes.NewReader( data ) )
		if err != nil {
			return nil, err
		}
		return FromImage( img ), nil
	}
	if data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46 {
		// a gif image
		img, err := gif.Decode( bytes.NewReader( data ) )
		if err != nil {
			return nil, err
		}
		return FromImage( img ), nil
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

// IsJpeg reports whether the raw bytes carry a JPEG container.
func IsJpeg( data []byte ) bool {
	return len(data) >= 3 && data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff
}

// Write encodes the buffer into the requested container. Note that
// Jpeg re-encoding is lossy and will not preserve pixel LSB data;
// use HideJpeg for JPEG outputs that must carry a payload.
func Write( w io.Writer, p *PixelBuffer, format Format ) error {
	img := p.Image()
	switch format {
	case Png:
		return png.Encode( w, img )
	case Bmp:
		return bmp.Encode( w, img )
	case Jpeg:
		return jpeg.Encode( w, img, nil )
	}
	return fmt.Errorf("Unsupported output format: %d", format)
}

// Save encodes the buffer into a byte slice.
func Save( p *PixelBuffer, format Format ) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := Write( buf, p, format ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
