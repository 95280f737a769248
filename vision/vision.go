package vision

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
)

// imagePayload extracts the raw JPEG bytes from a captured data URI. A bare
// base64 string without the data: prefix is accepted too.
func imagePayload(dataURI string) ([]byte, error) {
	raw := dataURI
	if i := strings.IndexByte(raw, ','); i >= 0 {
		raw = raw[i+1:]
	}

	img, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errors.Wrap(err, "vision: decode image")
	}
	return img, nil
}
