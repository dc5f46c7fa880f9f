// Package fingerprint computes content identities for schema contexts.
//
// Two digests are produced for every document:
//
//   - Raw: SHA-256 of the exact bytes as read (detects any edit)
//   - Canonical: SHA-256 of the compact re-serialization of the decoded
//     context (stable across reformatting and attribute reordering)
//
// The canonical digest also seeds a deterministic UUID v5 so that a
// context can be referred to by a stable identifier.
//
// # Example Usage
//
//	fp, err := fingerprint.OfDocument(data, schemaxml.NewDecoder())
//	fmt.Println(fp.Canonical, fp.ID)
//
// All functions are safe for concurrent use.
package fingerprint
