// Package commands defines the gradebook CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - add      Record a grade with its credit-hours
//   - remove   Remove one record by index
//   - clear    Remove all records
//   - list     Show recorded grades and the current GPA
//   - gpa      Print the current GPA (rounded, or --raw)
//   - grades   Show the grade scale
//   - export   Write the credit list to a file, optionally sealed
//   - import   Replace the credit list from an exported file
//
// # Implementation
//
// The root command loads configuration from the environment, applies flag
// overrides, and builds the dependency graph (storage backend, ledger) before
// any subcommand runs, so handlers share one hydrated app context.
package commands
