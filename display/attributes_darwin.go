//go:build darwin

package display

// macOS offers GL 3.2 and later only as core profile.
const coreOnly = true
