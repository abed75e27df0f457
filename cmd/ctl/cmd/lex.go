package cmd

import (
	"fmt"
	"os"

	"github.com/m-ou-se/configtaal/pkg/ctl"
	"github.com/m-ou-se/configtaal/pkg/diag"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr string
	lexShowPos  bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a CTL source file or expression",
	Long: `Scan a CTL program and print the atoms the parser recognizes:
identifiers, numbers, strings, and operators. Useful for debugging the
scanner independently of the parser proper.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's line:column")
}

func runLex(cmd *cobra.Command, args []string) error {
	tr, span, err := loadSource(args, lexEvalExpr)
	if err != nil {
		return err
	}

	toks, err := ctl.Lex(tr, span)
	for _, tok := range toks {
		text := tr.Slice(tok.Span)
		if lexShowPos {
			loc := tr.LocateSpan(tok.Span)
			fmt.Printf("[%-10s] %q @%d:%d\n", tok.Kind, text, loc.Line, loc.Column)
		} else {
			fmt.Printf("[%-10s] %q\n", tok.Kind, text)
		}
	}
	if err != nil {
		color, _ := cmd.Flags().GetBool("color")
		fmt.Fprintln(os.Stderr, diag.Render(tr, err, color))
		os.Exit(1)
	}
	return nil
}
