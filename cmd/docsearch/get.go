package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docsearch"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	doc, err := deps.Docs.GetDocs(deps.Ctx, query, c.Library)
	if err != nil {
		if docsearch.ErrorCode(err) == docsearch.EUNSUPPORTED {
			fmt.Fprintln(deps.Stderr, "Use 'docsearch libraries' to see supported libraries.")
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, doc)
	return nil
}
