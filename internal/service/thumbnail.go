package service

import (
	"bytes"
	"image"
	"image/png"
	"os"

	_ "image/jpeg"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// Thumbnail decodes a JPEG, PNG or WebP file and scales it to fit inside
// maxW x maxH keeping its aspect ratio. Smaller images are not enlarged.
func Thumbnail(path string, maxW, maxH int) (image.Image, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		decoded, decodeErr := webp.Decode(bytes.NewReader(raw))
		if decodeErr != nil {
			return nil, errors.Wrap(err, "decoding image")
		}
		img = decoded
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, errors.New("invalid image dimensions")
	}
	if maxW <= 0 || maxH <= 0 || (width <= maxW && height <= maxH) {
		return img, nil
	}

	w, h := maxW, height*maxW/width
	if h > maxH {
		w, h = width*maxH/height, maxH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)

	return dst, nil
}

// SaveThumbnail writes the Thumbnail of src to dst as PNG.
func SaveThumbnail(src, dst string, maxW, maxH int) error {
	img, err := Thumbnail(src, maxW, maxH)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err = png.Encode(out, img); err != nil {
		_ = out.Close()
		return errors.Wrap(err, "encoding thumbnail")
	}

	return out.Close()
}
