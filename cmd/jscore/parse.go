package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jscore-dev/jscore/internal/ast"
	"github.com/jscore-dev/jscore/internal/lexer"
	"github.com/jscore-dev/jscore/internal/parser"
	"github.com/jscore-dev/jscore/internal/span"
)

var argsParse struct {
	module bool
}

var cmdParse = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its diagnostics (or confirm a clean parse)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		src, typeScript, jsx, _, err := readSource(path)
		if err != nil {
			fatalf("jscore parse: %s: %v", path, err)
		}

		sourceType := ast.SourceScript
		if argsParse.module || jsx || typeScript {
			sourceType = ast.SourceModule
		}

		lx := lexer.New(src)
		prog, diags := parser.ParseProgram(lx, lx, parser.Options{
			SourceType: sourceType,
			JSX:        jsx,
			TypeScript: typeScript,
		})

		if len(diags) == 0 {
			fmt.Printf("%s: parsed %d statement(s) cleanly\n", path, len(prog.Body))
			return
		}
		sm := span.NewSourceMap(src)
		for _, d := range diags {
			pos := sm.Position(d.Start)
			fmt.Printf("%s:%d:%d: %s\n", path, pos.Line, pos.Column, d.Message)
		}
		cmd.SilenceUsage = true
		fatalf("%s: %d parse diagnostic(s)", path, len(diags))
	},
}

func init() {
	cmdParse.Flags().BoolVar(&argsParse.module, "module", false, "force ES module source type")
}
