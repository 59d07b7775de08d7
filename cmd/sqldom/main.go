// Package main provides a CLI that generates SQL data access statements from
// a table schema.
//
// Usage:
//
//	sqldom [flags] <command>
//
// Commands:
//   - generate: render get/list/insert/update/delete statements for every table
//   - dialects: list the supported SQL dialects and their capabilities
//   - config show: print the effective configuration
//   - version: print version information
package main

func main() {
	Execute()
}
