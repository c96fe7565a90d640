// Package ledger implements the credit store: an insertion-ordered list of
// grade/credit records with add, remove, clear, and hydration operations.
// Every mutation recomputes the GPA and rewrites the persisted list as one
// sequence; domain failures (bad tokens, bad indexes, malformed stored data)
// degrade to silent no-ops, while backend I/O failures are returned.
package ledger
