// Package main hosts the steganography command line tool.
//
// encode hides a message in an image and decode recovers it. inspect reports
// capacity and least-significant-bit statistics. Image I/O
// and all codec work live in importable packages; this package only resolves
// configuration, sets up logging and reports results.
package main
