package main

import "os"

// main runs the sparkline CLI and exits with status 1 on any failure.
func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
