package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"net/url"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// MIME types handled by this package.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeGIF  = "image/gif"
	MimeWebP = "image/webp"
	MimeBMP  = "image/bmp"
	MimeSVG  = "image/svg+xml"
)

var (
	// ErrEmptyData is returned for a file without content.
	ErrEmptyData = errors.New("assets: empty data")

	// ErrUnsupportedMime is returned for content that is not a supported
	// image type.
	ErrUnsupportedMime = errors.New("assets: unsupported mime type")
)

// DataURLError reports a malformed data URL.
type DataURLError struct {
	Reason string
	Err    error
}

func (e *DataURLError) Error() string {
	if e.Err != nil {
		return "assets: data URL: " + e.Reason + ": " + e.Err.Error()
	}
	return "assets: data URL: " + e.Reason
}

func (e *DataURLError) Unwrap() error { return e.Err }

// DecodeDataURL splits a data: URL into its declared media type and
// payload. Both base64 and percent-encoded payloads are accepted.
func DecodeDataURL(s string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, &DataURLError{Reason: "missing data: prefix"}
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, &DataURLError{Reason: "missing comma"}
	}

	params := strings.Split(meta, ";")
	mime = strings.ToLower(strings.TrimSpace(params[0]))
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// some encoders drop the padding
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		}
		if err != nil {
			return "", nil, &DataURLError{Reason: "bad base64", Err: err}
		}
	} else {
		text, uerr := url.PathUnescape(payload)
		if uerr != nil {
			return "", nil, &DataURLError{Reason: "bad escape", Err: uerr}
		}
		data = []byte(text)
	}
	return mime, data, nil
}

// EncodeDataURL builds a base64 data URL.
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Sniff returns the MIME type of data from its content, falling back to
// declared when the content is not recognized.
func Sniff(data []byte, declared string) string {
	if isSVG(data) {
		return MimeSVG
	}
	kind, err := filetype.Match(data)
	if err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return declared
}

func isSVG(data []byte) bool {
	head := data[:min(len(data), 512)]
	head = bytes.TrimLeft(head, " \t\r\n\ufeff")
	if bytes.HasPrefix(head, []byte("<svg")) {
		return true
	}
	return bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(data[:min(len(data), 2048)], []byte("<svg"))
}

// DecodeRaster decodes a non-SVG image.
func DecodeRaster(mime string, data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	switch mime {
	case MimePNG, MimeJPEG, MimeGIF, MimeWebP, MimeBMP:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMime, mime)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", mime, err)
	}
	return img, nil
}
