package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/parser"
	"github.com/jscore-dev/jscore/internal/printer"
	"github.com/jscore-dev/jscore/internal/semantic"
	"github.com/jscore-dev/jscore/internal/transform"
)

var argsMinify struct {
	write bool
}

var cmdMinify = &cobra.Command{
	Use:   "minify <file>",
	Short: "Run the peephole optimizer over a file and print the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		src, typeScript, jsx, _, err := readSource(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		sourceType := ast.SourceScript
		if jsx || typeScript {
			sourceType = ast.SourceModule
		}

		lx := lexer.New(src)
		prog, diags := parser.ParseProgram(lx, lx, parser.Options{
			SourceType: sourceType,
			JSX:        jsx,
			TypeScript: typeScript,
		})
		if len(diags) != 0 {
			return fmt.Errorf("%s: %d parse diagnostic(s), not minifying", path, len(diags))
		}

		tables, _ := semantic.Build(prog)

		driver := transform.NewDriver(
			transform.CompressTypeofUndefined{},
			transform.ReplaceUndefined{},
			transform.CompressBoolean{},
			transform.ConstantPropagation{},
			transform.InlineFunctions{},
			transform.SwitchMinimize{},
			transform.CompressBlock{},
		)
		driver.Run(prog, tables)

		out := printer.Print(prog, printer.Options{TypeScript: typeScript})
		if !argsMinify.write {
			fmt.Print(out)
			if len(out) == 0 || out[len(out)-1] != '\n' {
				fmt.Println()
			}
			return nil
		}
		return os.WriteFile(path, []byte(out), 0o644)
	},
}

func init() {
	cmdMinify.Flags().BoolVar(&argsMinify.write, "write", false, "overwrite the input file instead of printing to stdout")
}
