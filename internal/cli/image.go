package cli

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// resolveImage turns the -image flag value into what the API expects:
// remote URLs and data URIs pass through, anything else is read as a local
// file and embedded as a data URI.
func resolveImage(arg string) (string, error) {
	if arg == "" ||
		strings.HasPrefix(arg, "http://") ||
		strings.HasPrefix(arg, "https://") ||
		strings.HasPrefix(arg, "data:") {
		return arg, nil
	}
	return encodeImageDataURI(arg)
}

// encodeImageDataURI reads a local image file and returns it as a
// data:<mime>;base64,... URI, sniffing the MIME type from the content.
func encodeImageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
