package base64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const marker = ";base64,"

// GetContentType extracts the MIME type from a data-URL prefixed payload,
// returning "" when there is no usable prefix.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// DecodePayload decodes a base64 attachment body. Browsers submit either the
// bare base64 text or a full data URL; the data-URL prefix is stripped before
// decoding.
func DecodePayload(data string) ([]byte, error) {
	if idx := strings.Index(data, marker); idx != -1 {
		data = data[idx+len(marker):]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return decoded, nil
}
