package consolehandler_test

import (
	"os"

	"github.com/philipp01105/asynclog/core"
	"github.com/philipp01105/asynclog/handler/consolehandler"
)

// Write a warning line to stdout without escape sequences.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Color:  consolehandler.ColorNever,
	})
	defer h.Close()

	entry := core.Entry{Level: core.WarningLevel, Message: "low disk"}
	h.Handle(entry, "2026-01-15 12:00:00.000 [Warning] low disk")
	// Output:
	// 2026-01-15 12:00:00.000 [Warning] low disk
}
