package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loupe/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "loupe",
	Short: "Interactive JS/TS inspection pipeline",
	Long:  `Loupe drives a JavaScript/TypeScript front end over single files and prints its views: AST, scopes, symbols, control flow, generated code.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color mode against the output stream.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
