package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/blueprint/format"
	"github.com/dhamidi/blueprint/script"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	log := commonlog.GetLogger("blueprint.parse")

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a script document and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()

			root, err := script.Decode(f)
			if err != nil {
				return fmt.Errorf("parse script: %w", err)
			}
			log.Infof("parsed %s: %d top-level statements", args[0], len(root.Body))

			switch outputFormat {
			case "json":
				enc := format.NewScriptEncoder(os.Stdout)
				if err := enc.Encode(root); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "outline":
				fmt.Print(format.Outline(root))
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "outline", "output format (json, outline)")

	return cmd
}
