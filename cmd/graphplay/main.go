// Command graphplay records graph algorithm runs and plays them back in the
// terminal or to browsers over a websocket.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
