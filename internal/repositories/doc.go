// Package repositories implements the [Store] contract over three backends.
//
// Key Implementations:
//   - [MemoryStore] : ordered in-process slice, scoped to the process lifetime
//   - [FileStore] : CSV append log with a JSON mirror rewritten on every add
//   - [SQLiteStore] : users table with atomic sequence numbers for ordering
//
// The [FileStore] is deliberately asymmetric: the CSV file is the source of
// truth for reads, while the JSON file is a denormalized write-side mirror
// consulted only during adds. The two sinks are not written atomically; a
// crash between the CSV append and the JSON rewrite leaves the CSV ahead by
// one record. Single-writer, single-process use is assumed throughout — no
// file locking is performed.
package repositories
