package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/compozy/monday-mcp/pkg/logger"
	"github.com/mattn/go-isatty"
)

// Phases of a single tool call, in order
var Phases = []string{
	"Preparing request",
	"Calling monday.com",
	"Rendering response",
}

// -----
// Messages
// -----

type phaseMsg struct {
	name string
}

type doneMsg struct {
	message string
	err     error
}

// -----
// Styles
// -----

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"})
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"})
	phaseStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"})
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
)

// -----
// Model
// -----

type model struct {
	spinner spinner.Model
	bar     progress.Model
	message string
	phase   string
	index   int
	done    bool
	err     error
}

func newModel(message string) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return &model{spinner: s, bar: bar, message: message, index: -1}
}

// Init implements tea.Model
func (m *model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case phaseMsg:
		m.phase = msg.name
		m.index = phaseIndex(msg.name)
		return m, nil
	case doneMsg:
		m.done = true
		m.message = msg.message
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// View implements tea.Model
func (m *model) View() string {
	if m.done {
		if m.err != nil {
			return errorStyle.Render(m.message) + "\n"
		}
		return successStyle.Render(m.message) + "\n"
	}
	parts := []string{m.spinner.View() + " " + titleStyle.Render(m.message)}
	if m.phase != "" {
		parts = append(parts, phaseStyle.Render("→ "+m.phase))
	}
	if m.index >= 0 {
		done := float64(m.index+1) / float64(len(Phases))
		parts = append(parts, m.bar.ViewAs(done)+" "+
			phaseStyle.Render(fmt.Sprintf("Phase %d/%d", m.index+1, len(Phases))))
	}
	return strings.Join(parts, "\n")
}

func phaseIndex(name string) int {
	for i, p := range Phases {
		if p == name {
			return i
		}
	}
	return -1
}

// -----
// Indicator
// -----

// Indicator reports call progress as a spinner on terminals and as
// timestamped lines everywhere else.
type Indicator struct {
	out     io.Writer
	tty     bool
	program *tea.Program
	exited  chan struct{}
	started time.Time
	once    sync.Once
}

// New creates an indicator writing to out
func New(out io.Writer) *Indicator {
	return &Indicator{out: out, tty: isTerminal(out)}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start shows the indicator with the given title
func (i *Indicator) Start(message string) {
	i.started = time.Now()
	if !i.tty {
		i.log(message)
		return
	}
	i.program = tea.NewProgram(newModel(message), tea.WithOutput(i.out), tea.WithInput(nil))
	i.exited = make(chan struct{})
	go func() {
		defer close(i.exited)
		if _, err := i.program.Run(); err != nil {
			logger.Error("progress UI failed", "error", err)
		}
	}()
}

// Phase moves the indicator to the named phase
func (i *Indicator) Phase(name string) {
	if i.program != nil {
		i.program.Send(phaseMsg{name: name})
		return
	}
	i.log("→ " + name)
}

// Finish stops the indicator and reports the outcome
func (i *Indicator) Finish(err error) {
	i.once.Do(func() {
		elapsed := time.Since(i.started).Seconds()
		message := fmt.Sprintf("✓ Done (%.2fs)", elapsed)
		if err != nil {
			message = fmt.Sprintf("✗ Failed after %.2fs: %v", elapsed, err)
		}
		if i.program != nil {
			i.program.Send(doneMsg{message: message, err: err})
			<-i.exited
			return
		}
		i.log(message)
	})
}

func (i *Indicator) log(message string) {
	fmt.Fprintf(i.out, "[%s] %s\n", time.Now().Format("15:04:05"), message)
}

// Run executes fn between Start and Finish, handing it the phase callback
func Run(out io.Writer, message string, fn func(phase func(string)) error) error {
	indicator := New(out)
	indicator.Start(message)
	err := fn(indicator.Phase)
	indicator.Finish(err)
	return err
}
