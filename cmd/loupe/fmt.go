package main

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"loupe/internal/format"
	"loupe/internal/parser"
	"loupe/internal/source"
)

var fmtFlags struct {
	write bool
	check bool
}

func init() {
	f := fmtCmd.Flags()
	f.BoolVarP(&fmtFlags.write, "write", "w", false, "rewrite files in place")
	f.BoolVar(&fmtFlags.check, "check", false, "print diffs and fail if any file is not formatted")
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <files...>",
	Short: "Pretty-print source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func runFmt(cmd *cobra.Command, args []string) error {
	dirty := 0
	for _, path := range args {
		changed, err := fmtOne(cmd, path)
		if err != nil {
			return err
		}
		if changed {
			dirty++
		}
	}
	if fmtFlags.check && dirty > 0 {
		return fmt.Errorf("%d files need formatting", dirty)
	}
	return nil
}

func fmtOne(cmd *cobra.Command, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	original := string(content)

	file := source.NewFile(path, original)
	opts := parser.DefaultOptions()
	opts.PreserveParens = false
	parsed := parser.Parse(file, source.SourceTypeFromPath(path), opts)
	if len(parsed.Errors) > 0 {
		return false, fmt.Errorf("%s: not formatted: %d syntax errors", path, len(parsed.Errors))
	}
	formatted := format.Format(parsed.Program)
	if formatted == original {
		return false, nil
	}

	switch {
	case fmtFlags.check:
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(original),
			B:        difflib.SplitLines(formatted),
			FromFile: path,
			ToFile:   path + " (formatted)",
			Context:  3,
		})
		if err != nil {
			return false, err
		}
		fmt.Fprint(cmd.OutOrStdout(), diff)
	case fmtFlags.write:
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			return false, err
		}
	default:
		fmt.Fprint(cmd.OutOrStdout(), formatted)
	}
	return true, nil
}
