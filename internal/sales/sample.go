package sales

import (
	"bytes"
	_ "embed"
)

//go:embed sample.json
var sampleJSON []byte

// Sample returns the bundled demo series.
func Sample() ([]Record, error) {
	return Load(bytes.NewReader(sampleJSON))
}
