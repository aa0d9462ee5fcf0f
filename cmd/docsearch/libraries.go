package main

import "fmt"

// Run executes the libraries command.
func (c *LibrariesCmd) Run(deps *Dependencies) error {
	for _, library := range deps.Registry.Libraries() {
		prefix, _ := deps.Registry.Resolve(library)
		fmt.Fprintf(deps.Stdout, "%s  %s\n", library, prefix)
	}
	return nil
}
