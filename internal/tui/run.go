package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"fhcleanup/internal/domain"
)

// WorkFunc performs the cleanup, reporting directory progress through onProgress.
type WorkFunc func(onProgress func(current, total int)) (domain.Summary, error)

type result struct {
	summary domain.Summary
	err     error
}

// Run shows the progress view while work executes. Closing the view early
// does not stop the cleanup; Run still waits for work to finish.
func Run(cfg Config, work WorkFunc) (domain.Summary, error) {
	program := tea.NewProgram(NewModel(cfg))

	results := make(chan result, 1)
	go func() {
		start := time.Now()
		summary, err := work(func(current, total int) {
			program.Send(ProgressMsg{Current: current, Total: total})
		})
		if err != nil {
			program.Send(ErrorMsg{Err: err})
		} else {
			program.Send(DoneMsg{Summary: summary, Elapsed: time.Since(start)})
		}
		results <- result{summary: summary, err: err}
	}()

	if _, err := program.Run(); err != nil {
		res := <-results
		if res.err != nil {
			return res.summary, res.err
		}
		return res.summary, err
	}
	res := <-results
	return res.summary, res.err
}
