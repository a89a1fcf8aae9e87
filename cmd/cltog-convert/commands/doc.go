// Package commands implements the cltog-convert subcommands.
//
// The same validation and formatting as the web converter apply: results and
// error messages are printed in the language selected with --lang.
package commands
