// Package main implements the xref binary. It is the only public-facing
// entry point to xref, since its Go packages are all internal.
package main

import "github.com/replit/xref/internal/cli"

// Main entry point for the xref binary.
func main() {
	cli.DoCLI()
}
