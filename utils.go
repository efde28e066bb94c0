package swatches

import (
	"bytes"
	"encoding/json"
	"fmt"
	"tailscale.com/atomicfile"
)

func rgb2hex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// marshalIndent renders v the way the catalogs are stored: 2-space indent,
// no HTML escaping.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeFileAtomic replaces filename with data; a failed run never leaves a
// partial output file or a stray temp file behind.
func writeFileAtomic(filename string, data []byte) error {
	return atomicfile.WriteFile(filename, data, DefaultFilePerm)
}
