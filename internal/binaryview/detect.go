package binaryview

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/net/html/charset"

	"github.com/unkn0wn-root/hexpp/pkg/hexpp"
)

// These MIME types are technically not "text/*" but everyone treats them as text.
var textMIMESubstrings = []string{
	"json",
	"xml",
	"yaml",
	"html",
	"javascript",
	"ecmascript",
	"graphql",
}

type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Meta summarizes a blob for the info command.
type Meta struct {
	Kind      Kind
	MIME      string
	Charset   string
	Size      int
	Printable bool
	Digest    string
	// Preview is a compact view capped at PreviewByteLimit bytes.
	Preview hexpp.View
}

// Analyze inspects body. An empty contentType is sniffed from the content.
func Analyze(body []byte, contentType string) Meta {
	if strings.TrimSpace(contentType) == "" && len(body) > 0 {
		contentType = http.DetectContentType(body)
	}
	mimeType, charsetLabel := parseContentType(contentType)
	printable := isLikelyPrintable(body)

	cfg := hexpp.Simple()
	cfg.MaxBytes = PreviewByteLimit

	return Meta{
		Kind:      decideKind(mimeType, printable),
		MIME:      mimeType,
		Charset:   charsetLabel,
		Size:      len(body),
		Printable: printable,
		Digest:    Digest(body),
		Preview:   hexpp.Bind(body, cfg),
	}
}

// Digest returns the hex BLAKE2b-256 sum of body.
func Digest(body []byte) string {
	sum := blake2b.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// DecodeText decodes body from the named charset into UTF-8. It reports
// whether decoding succeeded and a short reason when it did not.
func DecodeText(body []byte, charsetLabel string) (string, bool, string) {
	label := strings.TrimSpace(strings.ToLower(charsetLabel))
	if label == "" {
		label = "utf-8"
	}

	reader, err := charset.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Sprintf("charset: %v", err)
	}

	decoded, err := ioReadAll(reader)
	if err != nil {
		return "", false, fmt.Sprintf("decode: %v", err)
	}
	return string(decoded), true, ""
}

// decideKind trusts a textual MIME type first and falls back to byte
// analysis otherwise. Sniffed types default to application/octet-stream for
// anything unusual, so printable content still counts as text.
func decideKind(mimeType string, printable bool) Kind {
	if mimeType != "" {
		if isTextMIME(mimeType) {
			return KindText
		}
		if printable {
			return KindText
		}
		return KindBinary
	}
	if printable {
		return KindText
	}
	return KindBinary
}

func parseContentType(value string) (mimeType, charsetLabel string) {
	if strings.TrimSpace(value) == "" {
		return "", ""
	}

	mType, params, err := mime.ParseMediaType(value)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(value)), ""
	}
	return strings.ToLower(mType), strings.ToLower(params["charset"])
}

func isTextMIME(mimeType string) bool {
	if mimeType == "" {
		return false
	}

	if strings.HasPrefix(mimeType, "text/") {
		return true
	}

	for _, marker := range textMIMESubstrings {
		if strings.Contains(mimeType, marker) {
			return true
		}
	}
	return false
}

// isLikelyPrintable rejects invalid UTF-8 outright and otherwise compares
// the share of printable runes in the leading sample against a threshold.
func isLikelyPrintable(body []byte) bool {
	if len(body) == 0 {
		return true
	}

	sample := body
	if len(sample) > printableSampleLimit {
		sample = sample[:printableSampleLimit]
	}

	printable := 0
	total := 0
	for len(sample) > 0 {
		if !utf8.FullRune(sample) && len(body) > printableSampleLimit {
			// Rune cut by the sample limit.
			break
		}
		r, size := utf8.DecodeRune(sample)
		// Invalid UTF-8 byte sequence - almost certainly binary data.
		if r == utf8.RuneError && size == 1 {
			return false
		}
		sample = sample[size:]
		total++
		if isAllowedRune(r) {
			printable++
		}
	}
	if total == 0 {
		return true
	}
	return float64(printable)/float64(total) >= printableThreshold
}

// isAllowedRune decides if a character is "printable" for our purposes.
// We allow common whitespace (tabs, newlines) because text files have those.
// Everything else must be a visible graphic character - control codes like
// NUL, BEL, ESC etc. are signs of binary data.
func isAllowedRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return true
	}
	if r < asciiPrintableMin {
		return false
	}
	return unicode.IsGraphic(r)
}

func ioReadAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	return buf.Bytes(), err
}
