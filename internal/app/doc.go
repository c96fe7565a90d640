// Package app wires configuration, storage backends, and the ledger service
// into the dependency graph used by the CLI.
package app
