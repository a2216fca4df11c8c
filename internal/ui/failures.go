package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"flakerun/internal/domain"
	"flakerun/internal/storage"
)

// FailureViewer displays the failed cases of the last report in an interactive TUI
// and lets the operator re-run them one by one
type FailureViewer struct {
	storage storage.Storage
	runner  CaseRunner
	cat     domain.Catalogue
}

var _ Viewer = (*FailureViewer)(nil)

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage, runner CaseRunner, cat domain.Catalogue) *FailureViewer {
	return &FailureViewer{
		storage: st,
		runner:  runner,
		cat:     cat,
	}
}

// failureEntry is one line of the viewer
type failureEntry struct {
	spec      domain.TestCaseSpec
	inCatalog bool
	last      *domain.CaseResult // last re-run, nil until re-run
}

func (e *failureEntry) resolved() bool {
	return e.last != nil && e.last.Success
}

// SpecFor returns the catalogue entry of a failed identifier. Identifiers that
// are no longer in the catalogue are re-run once.
func (fv *FailureViewer) SpecFor(identifier string) (domain.TestCaseSpec, bool) {
	if spec, ok := fv.cat.Lookup(identifier); ok {
		return spec, true
	}
	return domain.TestCaseSpec{Identifier: identifier, RepeatCount: 1}, false
}

// View displays failed identifiers in an interactive TUI
func (fv *FailureViewer) View(ctx context.Context, failed []string) error {
	if len(failed) == 0 {
		color.Green("✓ No failed cases in the last report!")
		return nil
	}

	entries := make([]*failureEntry, 0, len(failed))
	for _, id := range failed {
		spec, ok := fv.SpecFor(id)
		entries = append(entries, &failureEntry{spec: spec, inCatalog: ok})
	}

	var saveErr error
	saveUnresolved := func() {
		saveErr = fv.storage.Save(unresolvedIdentifiers(entries))
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		e := entries[index]
		switch {
		case e.resolved():
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, e.spec.Identifier)
		case e.last != nil:
			return fmt.Sprintf("[red]✗ [yellow]%d.[white] %s", index+1, e.spec.Identifier)
		default:
			return fmt.Sprintf("[yellow]%d.[white] %s", index+1, e.spec.Identifier)
		}
	}

	for i := range entries {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := len(unresolvedIdentifiers(entries))
		text := fmt.Sprintf(" Failed cases (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] re-run, → details, ← back, Ctrl+C exit ", len(entries), unresolved)
		if saveErr != nil {
			text += fmt.Sprintf("| [red]%s[white] ", tview.Escape(saveErr.Error()))
		}
		headerView.SetText(text)
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(entries) {
			detailsView.SetText(fv.formatDetails(entries[index]))
		}
	}

	rerun := func(index int) {
		e := entries[index]
		var result domain.CaseResult
		app.Suspend(func() {
			color.Cyan("Re-running %s x%d\n", e.spec.Identifier, e.spec.RepeatCount)
			result = fv.runner.RunCase(ctx, e.spec)
			if result.Success {
				color.Green("✓ passed (%s)", result.Duration.Round(time.Millisecond))
			} else {
				color.Red("✗ failed (%s)", failureReason(result))
			}
			fmt.Print("Press Enter to return to the viewer")
			_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
		})
		e.last = &result
		saveUnresolved()

		list.SetItemText(index, getListItemText(index), "")
		updateHeader()
		updateDetails()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				if index := list.GetCurrentItem(); index >= 0 && index < len(entries) {
					rerun(index)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return saveErr
}

// formatDetails formats a failed case using tview color tags
func (fv *FailureViewer) formatDetails(e *failureEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Case: %s[white]\n\n", tview.Escape(e.spec.Identifier))
	fmt.Fprintf(&b, "[cyan]Suite:[white] %s\n", tview.Escape(suiteName(e.spec.Identifier)))
	fmt.Fprintf(&b, "[cyan]Repeat count:[white] %d\n", e.spec.RepeatCount)
	if !e.inCatalog {
		fmt.Fprintf(&b, "[yellow]Not in the current catalogue, re-run once[white]\n")
	}

	fmt.Fprintf(&b, "\n[yellow]Reproduce:[white]\n%s\n\n", tview.Escape(fv.runner.CommandLine(e.spec)))

	switch {
	case e.last == nil:
		fmt.Fprintf(&b, "[yellow]Status:[white] failed in the last campaign\n")
	case e.last.Success:
		fmt.Fprintf(&b, "[green]Status: re-run passed in %s, removed from the report[white]\n", e.last.Duration.Round(time.Millisecond))
	default:
		fmt.Fprintf(&b, "[red]Status: re-run failed (%s)[white]\n", tview.Escape(failureReason(*e.last)))
	}

	return b.String()
}

func unresolvedIdentifiers(entries []*failureEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.resolved() {
			ids = append(ids, e.spec.Identifier)
		}
	}
	return ids
}
