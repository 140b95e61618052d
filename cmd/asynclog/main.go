// Command asynclog reads lines from stdin and writes each one through an
// asynclog Logger: colored on stdout and appended to a rotating log file.
//
//	tail -f app.out | asynclog --dir logs --prefix app --level warn
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
