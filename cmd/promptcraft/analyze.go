package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sant0-9/promptcraft/internal/keywords"
)

func (c *cli) newAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [keywords]",
		Short: "Show how a keyword list is classified",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := keywordsInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a := keywords.Analyze(raw)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(a)
			}

			fmt.Fprintf(out, "Keywords:        %d\n", a.TokenCount)
			fmt.Fprintf(out, "Complexity:      %s\n", a.Complexity)
			fmt.Fprintf(out, "Context:         %s\n", a.Context)
			fmt.Fprintf(out, "Technical level: %s\n", a.TechnicalLevel())
			fmt.Fprintf(out, "Primary phrase:  %s\n", a.PrimaryPhrase)
			fmt.Fprintf(out, "Terms:           %s\n", strings.Join(a.Terms, " | "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")
	return cmd
}
