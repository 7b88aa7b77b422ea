// SPDX-License-Identifier: Unlicense OR MIT

// Command terrazzo is the project tool: it scaffolds new applications,
// validates packaging manifests and lists the compiled-in backends.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "terrazzo:", err)
		os.Exit(1)
	}
}
