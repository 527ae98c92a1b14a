// Package history records review runs in a local SQLite database so
// past reports can be found again from the CLI.
package history
