package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StepStatus represents the state of a pipeline step
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepError
)

type step struct {
	name    string
	status  StepStatus
	current int64 // bytes, download steps only
	total   int64
	errMsg  string
}

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProgressDisplay renders the pipeline's step list in place. Quiet mode
// suppresses all output.
type ProgressDisplay struct {
	steps      []step
	spinnerIdx int
	quiet      bool
	mu         sync.Mutex
	lastRender time.Time
	rendered   bool
}

// NewProgressDisplay creates a display for the named steps.
func NewProgressDisplay(names []string, quiet bool) *ProgressDisplay {
	pd := &ProgressDisplay{
		steps: make([]step, len(names)),
		quiet: quiet,
	}
	for i, name := range names {
		pd.steps[i] = step{name: name}
	}
	return pd
}

// StartStep marks a step as running.
func (p *ProgressDisplay) StartStep(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index >= 0 && index < len(p.steps) {
		p.steps[index].status = StepRunning
		p.render()
	}
}

// CompleteStep marks a step as complete.
func (p *ProgressDisplay) CompleteStep(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index >= 0 && index < len(p.steps) {
		p.steps[index].status = StepComplete
		p.render()
	}
}

// FailStep marks a step as failed.
func (p *ProgressDisplay) FailStep(index int, errMsg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index >= 0 && index < len(p.steps) {
		p.steps[index].status = StepError
		p.steps[index].errMsg = errMsg
		p.render()
	}
}

// UpdateProgress updates byte progress for a download step.
func (p *ProgressDisplay) UpdateProgress(index int, current, total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if index >= 0 && index < len(p.steps) {
		p.steps[index].current = current
		p.steps[index].total = total
		// Throttle renders to avoid flickering
		if time.Since(p.lastRender) > 100*time.Millisecond {
			p.render()
		}
	}
}

// StartSpinner animates running steps until the returned channel is closed.
func (p *ProgressDisplay) StartSpinner() chan struct{} {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p.mu.Lock()
				p.spinnerIdx = (p.spinnerIdx + 1) % len(spinnerFrames)
				p.render()
				p.mu.Unlock()
			}
		}
	}()
	return done
}

func (p *ProgressDisplay) render() {
	if p.quiet {
		return
	}

	p.lastRender = time.Now()

	if p.rendered {
		fmt.Printf("\033[%dA\033[J", len(p.steps))
	}

	total := len(p.steps)
	for i, s := range p.steps {
		label := fmt.Sprintf("[%d/%d] %s...", i+1, total, s.name)

		var mark string
		switch s.status {
		case StepPending:
			label = dimStyle.Render(label)
			mark = " "
		case StepRunning:
			if s.total > 0 {
				pct := float64(s.current) / float64(s.total) * 100
				mark = runningStyle.Render(fmt.Sprintf("%.1f%% (%s / %s)",
					pct, formatBytes(s.current), formatBytes(s.total)))
			} else {
				mark = runningStyle.Render(spinnerFrames[p.spinnerIdx])
			}
		case StepComplete:
			mark = doneStyle.Render("✓")
		case StepError:
			mark = failStyle.Render("✗ " + s.errMsg)
		}

		fmt.Printf("%s %s\n", label, mark)
	}

	p.rendered = true
}

// Summary prints the final success line with the written output path.
func (p *ProgressDisplay) Summary(outputPath string) {
	if p.quiet {
		return
	}
	fmt.Println()
	fmt.Printf("%s Wrote %s\n", doneStyle.Render("✓"), outputPath)
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
