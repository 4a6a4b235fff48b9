// SPDX-License-Identifier: MIT

// Command embedchain trains embeddings on a line-per-sentence corpus and
// reports the best semantic chain, nearest neighbours and projections.
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
