// Package commands defines the gofeatures CLI and wires the demo catalogue
// for its subcommands.
//
// Commands
//
//   - list   Show every demo, optionally filtered by release
//   - run    Run one demo by name, or every demo with --all
//
// # Implementation
//
// The root command loads configuration and builds the registry before any
// subcommand runs, so handlers share one catalogue and one logger.
package commands
