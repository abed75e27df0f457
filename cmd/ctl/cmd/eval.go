package cmd

import (
	"fmt"
	"os"

	"github.com/m-ou-se/configtaal/pkg/ctl"
	"github.com/m-ou-se/configtaal/pkg/diag"
	"github.com/m-ou-se/configtaal/pkg/printer"
	"github.com/spf13/cobra"
)

var evalEvalExpr string

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Parse and evaluate a CTL expression",
	Long: `Parse a single CTL expression, evaluate it against an engine seeded
with the default preamble, and print the resulting value.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVarP(&evalEvalExpr, "eval", "e", "", "evaluate inline source instead of reading from file")
}

func runEval(cmd *cobra.Command, args []string) error {
	color, _ := cmd.Flags().GetBool("color")

	tr, span, err := loadSource(args, evalEvalExpr)
	if err != nil {
		return err
	}

	expr, err := ctl.Parse(tr, span)
	if err != nil {
		fmt.Fprintln(os.Stderr, diag.Render(tr, err, color))
		os.Exit(1)
	}

	engine := ctl.NewEngine()
	result, err := ctl.Evaluate(engine, expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, diag.Render(tr, err, color))
		os.Exit(1)
	}

	fmt.Println(printer.PrintValue(result))
	return nil
}
