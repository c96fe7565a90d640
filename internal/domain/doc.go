// Package domain holds the core types of the gradebook: the grade table, the
// credit record and list, the validation rules for untrusted stored data, and
// the interfaces implemented by the storage and service layers.
package domain
