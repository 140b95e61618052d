//go:build !windows

package filehandler

const newline = "\n"
