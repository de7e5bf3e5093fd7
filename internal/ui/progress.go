package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar tracks work over a known number of steps.
type ProgressBar interface {
	// Step records one finished item and names the next.
	Step(label string)
	// Done completes the bar. It is safe to call more than once.
	Done()
}

// Progress creates progress bars suited to the current terminal.
type Progress interface {
	Start(title string, total int) ProgressBar
}

type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress that writes to w, or os.Stderr when w is nil.
// Progress goes to stderr so that generated output on stdout stays clean.
func NewProgress(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	if w == nil {
		w = os.Stderr
	}
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Start returns an animated bar on a terminal and a line logger otherwise.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return &lineProgressBar{title: title, total: total, writer: p.writer}
	}
	return newAnimatedProgressBar(p.theme, title, total, p.writer)
}

// --- animated ---

type stepMsg string

type doneMsg struct{}

// barModel drives a spinner next to a determinate bar.
type barModel struct {
	spinner spinner.Model
	bar     progress.Model
	title   string
	label   string
	current int
	total   int
	done    bool
}

func newBarModel(theme *Theme, title string, total int) barModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))

	return barModel{
		spinner: s,
		bar: progress.New(
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
			progress.WithWidth(32),
		),
		title: title,
		total: total,
	}
}

func (m barModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		if m.current < m.total {
			m.current++
		}
		m.label = string(msg)
		return m, nil
	case doneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s %s [%d/%d] %s\n",
		m.spinner.View(), m.title, m.bar.ViewAs(m.percent()), m.current, m.total, m.label)
}

func (m barModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.current) / float64(m.total)
}

type animatedProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newAnimatedProgressBar(theme *Theme, title string, total int, w io.Writer) *animatedProgressBar {
	p := tea.NewProgram(newBarModel(theme, title, total), tea.WithOutput(w))
	go func() {
		_, _ = p.Run()
	}()
	return &animatedProgressBar{program: p}
}

func (b *animatedProgressBar) Step(label string) {
	b.program.Send(stepMsg(label))
}

func (b *animatedProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(doneMsg{})
		b.program.Wait()
	})
}

// --- headless ---

// lineProgressBar prints a line per step.
type lineProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
	done    bool
}

func (b *lineProgressBar) Step(label string) {
	if b.current < b.total {
		b.current++
	}
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s: %s\n", b.current, b.total, b.title, label)
}

func (b *lineProgressBar) Done() {
	if b.done {
		return
	}
	b.done = true
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s: done\n", b.current, b.total, b.title)
}
