//go:build !windows

package fileurl

// Default returns the path convention of the build target.
func Default() Platform { return Posix }
