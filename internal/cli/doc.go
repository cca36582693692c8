// Package cli implements the gridpath command line: a single cobra root
// command that solves the built-in flower bed grid and prints the result.
package cli
