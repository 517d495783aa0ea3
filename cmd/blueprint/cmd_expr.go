package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/blueprint/expr"
	"github.com/dhamidi/blueprint/format"
)

func newExprCmd() *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "expr <expression>",
		Short: "Compile an expression to its token-list form",
		Long: `Compile the text form of a condition expression, for example
'platform == "jvm" && !(tags contains "experimental")', to the flat
token list the document format stores under "expressions".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := expr.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse expression: %w", err)
			}
			if render {
				fmt.Println(e)
				return nil
			}
			text, err := format.MarshalExpression(e)
			if err != nil {
				return fmt.Errorf("encode tokens: %w", err)
			}
			if _, err := os.Stdout.Write(text); err != nil {
				return err
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "print the canonical text form instead of tokens")

	return cmd
}
