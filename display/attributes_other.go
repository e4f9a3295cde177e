//go:build !darwin

package display

const coreOnly = false
