package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	Driver        string
	Params        bool
	RequireOpcode bool
}

// BuildResult is the output of the build command.
type BuildResult struct {
	Clause string `json:"clause" yaml:"clause"`
	Params []any  `json:"params,omitempty" yaml:"params,omitempty"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build <query>...",
		Short: "Render filters as a WHERE clause",
		Long: `Render filters as the body of a SQL WHERE clause.

Every argument is a query string; repeated columns produce one predicate each.
Arguments are URL decoded, so a literal + must be written as %2B (a bare + is a space).
With --params the values are replaced by driver placeholders and listed separately.`,
		Example: `  where build 'age=gte.8&color=in.red,blue'
  where build 'score=gt.%2B5'
  where build --driver postgres --params age=gte.8 name=neq.bob`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Driver, "driver", "d", "sql", "sql dialect (mysql|postgres|sql)")
	cmd.Flags().BoolVarP(&opts.Params, "params", "p", false, "render placeholders and list the values separately")
	cmd.Flags().BoolVar(&opts.RequireOpcode, "require-opcode", false, "reject filters without an opcode prefix")

	return cmd
}

func runBuild(rootOpts *RootOptions, opts *BuildOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout())

	d, err := selectDriver(opts.Driver)
	if err != nil {
		return report(formatter, WrapExitError(ExitUsage, ErrCodeUsage, err))
	}

	predicates, exitErr := parseArgs(args, opts.RequireOpcode)
	if exitErr != nil {
		return report(formatter, exitErr)
	}

	result := BuildResult{}
	if opts.Params {
		result.Clause, result.Params, err = d.RenderParam(predicates)
	} else {
		result.Clause, err = d.Render(predicates)
	}
	if err != nil {
		return report(formatter, filterError(err))
	}
	log.Infof("rendered %d predicate(s) with the %s driver", len(predicates), opts.Driver)

	return formatter.Success(result, buildText(result, opts.Params))
}

func buildText(result BuildResult, params bool) string {
	var sb strings.Builder
	sb.WriteString(result.Clause)
	sb.WriteString("\n")
	if params {
		for i, p := range result.Params {
			fmt.Fprintf(&sb, "  %d: %v\n", i+1, p)
		}
	}
	return sb.String()
}
