//go:build linux || darwin || freebsd

package helpers

// userDir is the name of the Aurral directory in the user's home directory.
const userDir = ".aurral"
