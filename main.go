// Package main is the entry point for the strmut CLI.
package main

import "gooze.dev/pkg/strmut/cmd"

func main() {
	cmd.Execute()
}
