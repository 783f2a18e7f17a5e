// SPDX-License-Identifier: MIT

// Command axisctl inspects and aligns coordinate systems described in YAML.
//
//	axisctl inspect axes.yaml
//	axisctl broadcast axes.yaml --yaml
//	axisctl intersect axes.yaml -v
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "axisctl:", err)
		os.Exit(1)
	}
}
