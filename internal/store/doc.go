// Package store provides the storage backends behind the gradebook's
// key/value port.
//
// It contains concrete implementations of domain.KV:
//   - FileKV: one JSON file per key under the home directory (the default)
//   - BoltKV: a single-bucket bbolt database
//   - MemKV:  map-backed, for tests
//
// All methods are concurrency-safe. The package also carries the passphrase
// envelope used to seal export files (Seal/Open).
package store
