package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-where/pkg/filter/expr"
)

// ParseOptions holds flags for the parse command.
type ParseOptions struct {
	RequireOpcode bool
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <query>...",
		Short: "Show the predicates parsed from filters",
		Long: `Show the structured predicates parsed from filters without rendering them.

Useful to check which operator and criteria a filter resolves to.`,
		Example:       `  where parse --format json 'age=gte.8&color=red,blue'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.RequireOpcode, "require-opcode", false, "reject filters without an opcode prefix")

	return cmd
}

func runParse(rootOpts *RootOptions, opts *ParseOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout())

	predicates, exitErr := parseArgs(args, opts.RequireOpcode)
	if exitErr != nil {
		return report(formatter, exitErr)
	}

	return formatter.Success(predicates, parseText(predicates))
}

func parseText(predicates []*expr.Predicate) string {
	var sb strings.Builder
	for _, p := range predicates {
		fmt.Fprintf(&sb, "%-24s %#v\n", p.String(), p)
	}
	return sb.String()
}
