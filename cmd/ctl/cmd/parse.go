package cmd

import (
	"fmt"
	"os"

	"github.com/m-ou-se/configtaal/pkg/ctl"
	"github.com/m-ou-se/configtaal/pkg/diag"
	"github.com/m-ou-se/configtaal/pkg/printer"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a CTL expression and print its AST",
	Long: `Parse a single CTL expression and print its Lisp-style pretty-printed
AST. If no file is given, reads from stdin. Use -e to parse an inline
expression instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline source instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	tr, span, err := loadSource(args, parseEvalExpr)
	if err != nil {
		return err
	}

	expr, err := ctl.Parse(tr, span)
	if err != nil {
		color, _ := cmd.Flags().GetBool("color")
		fmt.Fprintln(os.Stderr, diag.Render(tr, err, color))
		os.Exit(1)
	}

	fmt.Println(printer.Print(expr))
	return nil
}
