package raster

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// Codec decodes image files and encodes standard images.
type Codec interface {
	Decode(path string) (image.Image, error)
	Encode(w io.Writer, img image.Image) error
}

// ImagingCodec is a Codec backed by github.com/disintegration/imaging.
// It decodes JPEG, PNG, GIF, TIFF and BMP.
type ImagingCodec struct {
	// AutoOrientation applies the EXIF orientation tag when decoding.
	AutoOrientation bool

	// Format selects the encoder used by Encode.
	Format imaging.Format
}

// DefaultCodec decodes with EXIF orientation applied and encodes PNG.
var DefaultCodec Codec = ImagingCodec{AutoOrientation: true, Format: imaging.PNG}

// Decode opens and decodes the file at path.
func (c ImagingCodec) Decode(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(c.AutoOrientation))
}

// Encode writes img to w in the codec's format.
func (c ImagingCodec) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, c.Format)
}

// Load decodes the file at path with DefaultCodec.
func Load(path string) (*Image, error) {
	return LoadWith(DefaultCodec, path)
}

// LoadWith decodes the file at path with c and wraps the result.
//
// Any failure, including a file that decodes to an empty image, is returned
// as a *DecodeError carrying path. On success Path reports path.
func LoadWith(c Codec, path string) (*Image, error) {
	img, err := c.Decode(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	m, err := Wrap(img)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	m.path = path
	return m, nil
}

// Save encodes img to path with an ImagingCodec whose format is chosen from
// the file extension.
func Save(img image.Image, path string) error {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return err
	}
	return SaveWith(ImagingCodec{Format: f}, img, path)
}

// SaveWith creates path and encodes img into it with c.
func SaveWith(c Codec, img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := c.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
