package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
)

// Calculator is an interface for computing content checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized XML content.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	hash := sha256.Sum256([]byte(Normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

// Digest is an io.Writer that hashes everything written to it, so output can
// be checksummed while it is streamed.
type Digest struct {
	h hash.Hash
}

// NewDigest creates an empty SHA-256 digest.
func NewDigest() *Digest {
	return &Digest{h: sha256.New()}
}

// Write never fails.
func (d *Digest) Write(p []byte) (int, error) {
	return d.h.Write(p)
}

// Sum returns the hex digest of the bytes written so far. It equals
// CalculateRaw of the same bytes.
func (d *Digest) Sum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}

// Normalize returns the XML document with comments removed, CRLF turned into
// LF and whitespace-only text between tags dropped. Text with any
// non-whitespace character is kept verbatim.
func Normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = removeComments(content)

	var b strings.Builder
	b.Grow(len(content))

	i := 0
	for i < len(content) {
		if !isSpace(content[i]) {
			b.WriteByte(content[i])
			i++
			continue
		}

		j := i
		for j < len(content) && isSpace(content[j]) {
			j++
		}

		// whitespace run between two tags, or at either end of the document
		prevIsTagEnd := i == 0 || content[i-1] == '>'
		nextIsTagStart := j == len(content) || content[j] == '<'
		if !(prevIsTagEnd && nextIsTagStart) {
			b.WriteString(content[i:j])
		}
		i = j
	}

	return b.String()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// removeComments strips <!-- ... --> sections. An unterminated comment runs to
// the end of the content.
func removeComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	for {
		start := strings.Index(content, "<!--")
		if start < 0 {
			b.WriteString(content)
			return b.String()
		}
		b.WriteString(content[:start])

		end := strings.Index(content[start+4:], "-->")
		if end < 0 {
			return b.String()
		}
		content = content[start+4+end+3:]
	}
}
