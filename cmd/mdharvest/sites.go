package main

import (
	"fmt"

	"github.com/pkruczek/mdharvest"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	sites, err := loadSites(c.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdharvest.ErrorMessage(err))
		return err
	}

	for _, s := range sites {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", s.Name, s.IndexURL)
	}

	return nil
}
