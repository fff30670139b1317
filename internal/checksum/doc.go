// Package checksum provides content hashing with normalization support.
//
// Two checksums are offered:
//
//   - Raw checksum: hash of the exact bytes (content files, archives)
//   - Normalized checksum: hash of an XML document after removing comments,
//     unifying line endings and dropping indentation between tags
//
// The normalized form lets two renders of the same manifest compare equal even
// when one was re-indented or saved with CRLF line endings.
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(content)
//	normalized := calculator.CalculateNormalized(manifestXML)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
