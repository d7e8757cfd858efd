package ipc

import (
	"bytes"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns "blake3:<hex>" over the headerless encoding of p. Two sets
// share a fingerprint only if they encode to the same bytes, so order matters.
func Fingerprint(p *Properties) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, p, EncodeOptions{}); err != nil {
		return "", err
	}
	sum := blake3.Sum256(buf.Bytes())
	return "blake3:" + hex.EncodeToString(sum[:]), nil
}
