// silicalc — material estimator for window installation projects.
//
// Estimates silicone sealant, screws, and rubber gasket quantities from a
// list of window dimensions, and renders the result as an on-screen summary
// and a printable PDF report.
//
// Build:
//
//	go build -o silicalc ./cmd/silicalc
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
