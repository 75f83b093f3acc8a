// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command catalogctl is the operator tool of the movie catalog: schema
// migrations, the sample data set, role promotion and health probes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
