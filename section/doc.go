// Package section defines the low-level binary structures and constants of
// the bundle archive format: the archive header, the resource entry table,
// and the two sidecar dialects that carry per-texture metadata.
//
// # Archive layout
//
//	┌─────────────────────────────────────────────────────────┐
//	│ ArchiveHeader (0x30 bytes, fixed)                        │
//	├─────────────────────────────────────────────────────────┤
//	│ Notes (variable)                                         │
//	├─────────────────────────────────────────────────────────┤
//	│ Debug (variable, only if flag bit 3 set)                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Entry table (N × 0x50 bytes, fixed per entry)            │
//	├─────────────────────────────────────────────────────────┤
//	│ Data block 0 (0x10-aligned per-stream payloads)          │
//	├─────────────────────────────────────────────────────────┤
//	│ Data block 1 (0x80-aligned per-stream payloads)          │
//	└─────────────────────────────────────────────────────────┘
//
// Only streams 0 and 1 ever carry bytes; blocks 2 and 3 exist only as
// offset fields (both equal to the 0x80-aligned end of block 1).
//
// ResourceEntry keeps decoded, semantic fields in memory — the per-type
// alignment nibble is an encoding detail applied only by Bytes()/Parse(),
// via format.Nibbles, never carried as part of the in-memory struct.
//
// Sidecar is a tagged variant (originalSidecar / remasteredSidecar)
// selected by DetectSidecar from the file's leading bytes; each variant
// owns its own format-byte and width/height offsets.
package section
