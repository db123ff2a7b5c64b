// Command subscriptions runs the subscription service as an HTTP API and
// offers one-shot commands for managing subscriptions from a shell.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
