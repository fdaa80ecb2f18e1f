package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/promptcraft/internal/engine"
)

func (c *cli) newGenerateCmd() *cobra.Command {
	var (
		task     string
		platform string
		offline  bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "generate [keywords]",
		Short: "Generate a prompt from comma-separated keywords",
		Example: `  promptcraft generate "React, hooks, responsive design" --task code-generation --platform claude
  echo "market research, trends" | promptcraft generate --task analysis --offline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := keywordsInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			req := engine.Request{Keywords: raw, TaskType: task, Platform: platform}
			if err := engine.ValidateRequest(req); err != nil {
				return err
			}

			var resp engine.Response
			if offline {
				resp = engine.New(nil).Offline(req)
			} else {
				eng, err := engine.FromConfig(cmd.Context(), c.cfg, c.logger)
				if eng == nil {
					return err
				}
				if err != nil {
					c.logger.Warn("model unavailable, using offline template", zap.Error(err))
				}
				resp = eng.Generate(cmd.Context(), req)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			if !resp.Success {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s; using offline template\n", resp.Error)
			}
			_, err = fmt.Fprintln(out, resp.Text())
			return err
		},
	}

	cmd.Flags().StringVarP(&task, "task", "t", "general", "task category, see the catalog command")
	cmd.Flags().StringVarP(&platform, "platform", "p", "general", "target platform id or host name")
	cmd.Flags().BoolVar(&offline, "offline", false, "use the offline template without calling a model")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full response as JSON")

	return cmd
}

// keywordsInput takes keywords from args, or from stdin when it is piped.
// Separate arguments without commas are treated as separate keywords.
func keywordsInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 {
		if f, ok := stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			return "", nil
		}
		data, err := io.ReadAll(io.LimitReader(stdin, 64<<10))
		if err != nil {
			return "", fmt.Errorf("reading keywords from stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if len(args) > 1 && !strings.Contains(strings.Join(args, ""), ",") {
		return strings.Join(args, ", "), nil
	}
	return strings.Join(args, " "), nil
}
