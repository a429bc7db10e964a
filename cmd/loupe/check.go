package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"loupe/internal/driver"
	"loupe/internal/ui"
)

var checkFlags struct {
	lint    bool
	workers int
	noUI    bool
}

func init() {
	f := checkCmd.Flags()
	f.BoolVar(&checkFlags.lint, "lint", false, "also run lint rules")
	f.IntVar(&checkFlags.workers, "workers", 0, "parallel workers (0 = number of CPUs)")
	f.BoolVar(&checkFlags.noUI, "no-ui", false, "disable the progress UI even on a terminal")
}

var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Check files for syntax (and optionally lint) problems",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := driver.CheckOptions{
		Lint:    checkFlags.lint,
		Workers: checkFlags.workers,
	}

	useUI := !checkFlags.noUI && isTerminal(os.Stdout)
	var events chan driver.Event
	var uiDone chan error
	if useUI {
		events = make(chan driver.Event, len(args)*4)
		opts.Events = events
		uiDone = make(chan error, 1)
		prog := tea.NewProgram(ui.NewProgressModel("checking", args, events))
		go func() {
			_, err := prog.Run()
			uiDone <- err
		}()
	}

	reports, err := driver.CheckFiles(cmd.Context(), args, opts)
	if useUI {
		<-uiDone
	}
	if err != nil {
		return err
	}

	failures := 0
	for i := range reports {
		rep := &reports[i]
		if rep.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", rep.Path, rep.Err)
			failures++
			continue
		}
		if len(rep.Diagnostics) > 0 {
			renderFileDiagnostics(cmd.ErrOrStderr(), rep.Path, rep.Diagnostics, colorEnabled(cmd, os.Stderr))
		}
		if rep.Failed() {
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(reports))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d files ok\n", len(reports))
	return nil
}
