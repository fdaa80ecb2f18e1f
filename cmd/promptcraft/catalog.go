package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sant0-9/promptcraft/internal/catalog"
)

func (c *cli) newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List task categories and target platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "TASK\tNAME\tEXAMPLE KEYWORDS")
			for _, t := range catalog.TaskCategories() {
				tmpl := catalog.LookupTaskTemplate(t)
				fmt.Fprintf(w, "%s\t%s %s\t%s\n", t, tmpl.Emoji, tmpl.DisplayName, strings.TrimPrefix(tmpl.Placeholder, "e.g., "))
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "PLATFORM\tNAME\tHOSTS")
			for _, p := range catalog.Platforms() {
				profile := catalog.LookupPlatformProfile(p)
				hosts := strings.Join(profile.Hosts, ", ")
				if hosts == "" {
					hosts = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", p, profile.DisplayName, hosts)
			}

			return w.Flush()
		},
	}
}
