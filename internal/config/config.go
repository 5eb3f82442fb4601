// Package config contains global variables that are set according to
// the command line. They can be accessed from anywhere within xref.
package config

// Quiet is true if --quiet was passed on the command line.
var Quiet bool

// Verbose is true if --verbose was passed on the command line. It
// enables debug logging to stderr.
var Verbose bool

// Color is the value of --color: "auto", "always" or "never".
var Color = "auto"
