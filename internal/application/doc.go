// Package application wires the document loader, the line filter and the
// output writer into a single search run, keeping the main package focused
// on CLI parsing and exit-status handling.
package application
