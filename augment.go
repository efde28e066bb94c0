package swatches

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/brandquad/swatches/colorutils"
	"github.com/tailscale/hujson"
	"log"
	"os"
	"time"
)

// Augment sets a "cmyk" member on every object of the catalog array, computed
// from its "rgb" member. Member order and all other fields are left as they
// are; an existing "cmyk" is replaced in place. It returns the number of
// records updated.
func Augment(catalog *hujson.Value, rounding colorutils.Rounding) (int, error) {
	arr, ok := catalog.Value.(*hujson.Array)
	if !ok {
		return 0, ErrNotArray
	}

	for i := range arr.Elements {
		obj, ok := arr.Elements[i].Value.(*hujson.Object)
		if !ok {
			return i, fmt.Errorf("record %d: %w: not an object", i, ErrMalformedRecord)
		}
		if err := augmentRecord(obj, rounding); err != nil {
			return i, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return len(arr.Elements), nil
}

func augmentRecord(obj *hujson.Object, rounding colorutils.Rounding) error {
	rgbIdx, cmykIdx := -1, -1

	// a repeated key keeps the first one's position and the last one's value
	members := obj.Members[:0]
	for _, m := range obj.Members {
		var name string
		if err := json.Unmarshal(m.Name.Pack(), &name); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}

		switch name {
		case "rgb":
			if rgbIdx >= 0 {
				members[rgbIdx].Value = m.Value
				continue
			}
			rgbIdx = len(members)
		case "cmyk":
			if cmykIdx >= 0 {
				continue
			}
			cmykIdx = len(members)
		}
		members = append(members, m)
	}
	obj.Members = members

	if rgbIdx < 0 {
		return fmt.Errorf("%w: missing rgb", ErrMalformedRecord)
	}
	rgb, err := parseRGB(obj.Members[rgbIdx].Value)
	if err != nil {
		return err
	}

	cmyk, err := json.Marshal(colorutils.Rgb2cmyk(rgb[0], rgb[1], rgb[2], rounding))
	if err != nil {
		return err
	}
	value, err := hujson.Parse(cmyk)
	if err != nil {
		return err
	}

	if cmykIdx >= 0 {
		obj.Members[cmykIdx].Value = value
		return nil
	}
	obj.Members = append(obj.Members, hujson.ObjectMember{
		Name:  hujson.Value{Value: hujson.Literal(`"cmyk"`)},
		Value: value,
	})
	return nil
}

func parseRGB(v hujson.Value) (colorutils.RGB, error) {
	var values []int
	if err := json.Unmarshal(v.Pack(), &values); err != nil {
		return colorutils.RGB{}, fmt.Errorf("%w: rgb: %v", ErrMalformedRecord, err)
	}
	if len(values) != 3 {
		return colorutils.RGB{}, fmt.Errorf("%w: rgb has %d components", ErrMalformedRecord, len(values))
	}
	rgb := colorutils.RGB{values[0], values[1], values[2]}
	if !rgb.Valid() {
		return colorutils.RGB{}, fmt.Errorf("%w: rgb %v out of range", ErrMalformedRecord, values)
	}
	return rgb, nil
}

// AugmentJSON parses a catalog (comments and trailing commas are tolerated),
// augments it and renders it as standard JSON indented by two spaces.
func AugmentJSON(data []byte, rounding colorutils.Rounding) ([]byte, int, error) {
	catalog, err := hujson.Parse(data)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing catalog: %w", err)
	}
	catalog.Minimize()

	n, err := Augment(&catalog, rounding)
	if err != nil {
		return nil, n, err
	}

	var out bytes.Buffer
	if err = json.Indent(&out, catalog.Pack(), "", "  "); err != nil {
		return nil, n, err
	}
	return out.Bytes(), n, nil
}

// AugmentFile reads c.CatalogInput, adds CMYK values and writes the result to
// c.CatalogOutput. It returns the number of records written.
func AugmentFile(c *Config) (int, error) {
	st := time.Now()
	log.Printf("[>] Adding CMYK values to %s", c.CatalogInput)
	defer func() {
		log.Printf("[<] Adding CMYK values in %s", time.Since(st))
	}()

	data, err := os.ReadFile(c.CatalogInput)
	if err != nil {
		return 0, fmt.Errorf("reading catalog: %w", err)
	}

	out, n, err := AugmentJSON(data, c.CatalogRounding)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.CatalogInput, err)
	}

	if err = writeFileAtomic(c.CatalogOutput, out); err != nil {
		return 0, fmt.Errorf("writing %s: %w", c.CatalogOutput, err)
	}
	return n, nil
}
