// Package store persists the punch log.
//
// Two backends share the Log interface:
//
//   - file: one event per line in the original punch.log format, rewritten
//     atomically (temp file + rename) on every append.
//   - sqlite: one row per event, ordered by seq, in a WAL-mode database.
//
// Both return events in the order they were appended. A missing log is not an
// error; it loads as an empty sequence. Malformed content is reported as a
// *StorageError naming the location of the bad record.
package store
