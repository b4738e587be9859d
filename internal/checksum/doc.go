// Package checksum provides script content hashing with normalization support.
//
// Every ScriptFile in the catalog carries two checksums:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing comments and normalizing whitespace
//     (formatting-independent content identity)
//
// The normalized checksum is also the key of the parser's result cache, so a
// reformatted but otherwise unchanged script is not parsed twice.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
