package util

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// Audio MIME prefixes accepted by the upload endpoint. Browsers record
// microphone audio as audio/* or video/webm depending on the codec.
var AllowedAudioTypes = []string{"audio/", "video/webm", "application/ogg"}

// ValidateMimeType sniffs the first 512 bytes and checks the detected type
// against the allow list (full types or prefixes).
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}
