// Package version holds the compiler's version string.
package version

const number = "0.2.0"

func String() string { return "bplusc " + number }
