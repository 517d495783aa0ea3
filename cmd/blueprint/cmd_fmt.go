package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/blueprint/format"
	"github.com/dhamidi/blueprint/script"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Normalize and pretty-print a script document",
		Long: `Re-serialize a script document to stdout.

If no file is provided, reads the document from stdin.
Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			var filename string

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			root, err := script.Decode(bytes.NewReader(source))
			if err != nil {
				return fmt.Errorf("parse script: %w", err)
			}
			output, err := format.MarshalIndent(root)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}
			output = append(output, '\n')

			if fmtOverwrite {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = os.Stdout.Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "write result back to the source file")

	return cmd
}
