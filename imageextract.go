package swatches

import (
	"fmt"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"time"
)

// DecodeFunc loads filename into an in-memory image.
type DecodeFunc func(filename string) (image.Image, error)

var decoders = map[string]DecodeFunc{
	DecoderStd: loadImageStd,
}

// RegisterDecoder makes fn available to LoadImage under name. It is meant to
// be called from init.
func RegisterDecoder(name string, fn DecodeFunc) {
	decoders[name] = fn
}

// HasDecoder reports whether LoadImage accepts name.
func HasDecoder(name string) bool {
	_, ok := decoders[name]
	return ok
}

// LoadImage decodes filename with the named decoder; an empty name selects
// DecoderStd.
func LoadImage(filename, decoder string) (image.Image, error) {
	st := time.Now()
	log.Printf("[>] Loading image %s (%s decoder)", filename, decoder)
	defer func() {
		log.Printf("[<] Loading image %s in %s", filename, time.Since(st))
	}()

	if decoder == "" {
		decoder = DecoderStd
	}
	fn, ok := decoders[decoder]
	if !ok {
		return nil, fmt.Errorf("unknown decoder %q", decoder)
	}
	return fn(filename)
}

func loadImageStd(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	log.Printf("[!] Decoded %s as %s, %dx%d", filename, format, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}
