// Package must3 provides mesh generators that panic on invalid arguments.
// See package form3 for versions returning errors.
package must3
