// Command wayfinder answers travel-time questions over a location graph,
// from the command line or as an HTTP service.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
