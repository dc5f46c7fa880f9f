// Package filesystem abstracts the file access used by the command line.
//
// Commands read schema documents, expand directory arguments into the
// documents beneath them, and optionally write formatted output back.
// Routing those operations through Provider keeps commands testable
// against an in-memory tree.
//
// Implementations:
//   - OSFileSystem: the host filesystem
//   - MemoryFileSystem: an in-memory tree for tests
//   - EmbedFileSystem: a read-only view of an embed.FS
package filesystem
