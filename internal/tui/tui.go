// Package tui provides the interactive terminal prompt: type a phrase, press
// Enter, browse its anagram combinations.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/anagram/internal/clipboard"
	"github.com/f3rmion/anagram/internal/phrase"
	"github.com/f3rmion/anagram/internal/tui/banner"
	"github.com/mattn/go-runewidth"
)

// InvalidPhraseMessage is shown when a phrase contains anything but letters
// and spaces.
const InvalidPhraseMessage = "the phrase contains characters this program does not accept"

// Searcher runs one anagram search.
type Searcher interface {
	FindAnagrams(raw string) ([]string, error)
}

type searchResultMsg struct {
	raw     string
	results []string
	err     error
	elapsed time.Duration
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// searchCmd runs the search off the UI goroutine.
func searchCmd(s Searcher, raw string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		results, err := s.FindAnagrams(raw)
		return searchResultMsg{raw: raw, results: results, err: err, elapsed: time.Since(start)}
	}
}

// Model is the Bubble Tea model for the anagram prompt.
type Model struct {
	input   textinput.Model
	spinner spinner.Model
	solver  Searcher
	copyFn  func([]string) error

	phrase    string // normalized phrase of the last search
	results   []string
	offset    int // first visible result row
	elapsed   time.Duration
	searching bool
	searched  bool
	err       error
	copied    bool

	width  int
	height int
}

// New creates a new TUI model.
func New(solver Searcher) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a phrase..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = LoadingStyle

	return Model{
		input:   ti,
		spinner: sp,
		solver:  solver,
		copyFn:  clipboard.WriteLines,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.searching {
				return m, nil
			}
			m.searching = true
			m.err = nil
			m.copied = false
			return m, tea.Batch(m.spinner.Tick, searchCmd(m.solver, m.input.Value()))
		case "up":
			m.scroll(-1)
			return m, nil
		case "down":
			m.scroll(1)
			return m, nil
		case "pgup":
			m.scroll(-m.visibleRows())
			return m, nil
		case "pgdown":
			m.scroll(m.visibleRows())
			return m, nil
		case "ctrl+y":
			if len(m.results) > 0 {
				if err := m.copyFn(m.results); err != nil {
					m.err = fmt.Errorf("copying results: %w", err)
					return m, nil
				}
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
			return m, nil
		}

	case searchResultMsg:
		m.searching = false
		m.searched = true
		m.offset = 0
		m.elapsed = msg.elapsed
		m.err = msg.err
		m.results = msg.results
		m.phrase = ""
		if p, err := phrase.Normalize(msg.raw); err == nil {
			m.phrase = p.String()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll(0)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// scroll moves the result window by delta rows, clamped to the content.
func (m *Model) scroll(delta int) {
	rows := len(layoutColumns(m.results, m.contentWidth()))
	maxOffset := rows - m.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	m.offset += delta
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 76
	}
	// Border and padding of the results box.
	if w := m.width - 6; w > 10 {
		return w
	}
	return 10
}

func (m Model) visibleRows() int {
	if m.height <= 0 {
		return 10
	}
	if rows := m.height - 18; rows > 3 {
		return rows
	}
	return 3
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(" Anagram Finder ") + "  " +
		SubtitleStyle.Render("Every way to spell a phrase with dictionary words"))
	b.WriteString("\n")

	if art := banner.Cached(m.phrase, m.contentWidth()); art != "" {
		b.WriteString(BannerStyle.Render(art))
	}
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n  ")

	switch {
	case m.searching:
		b.WriteString(m.spinner.View() + LoadingStyle.Render(" Searching..."))
	case m.err != nil && errors.Is(m.err, phrase.ErrInvalidPhrase):
		b.WriteString(ErrorStyle.Render(InvalidPhraseMessage))
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
	case m.searched:
		b.WriteString(StatusStyle.Render(fmt.Sprintf("%d combinations in %s",
			len(m.results), m.elapsed.Round(time.Millisecond))))
		if m.copied {
			b.WriteString("  " + CopiedStyle.Render("Copied!"))
		}
	}
	b.WriteString("\n")

	if lines := layoutColumns(m.results, m.contentWidth()); len(lines) > 0 {
		end := m.offset + m.visibleRows()
		if end > len(lines) {
			end = len(lines)
		}
		b.WriteString(ResultsBoxStyle.Render(strings.Join(lines[m.offset:end], "\n")))
		b.WriteString("\n")
		if len(lines) > m.visibleRows() {
			b.WriteString(HelpStyle.Render(fmt.Sprintf("  rows %d-%d of %d", m.offset+1, end, len(lines))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("  Enter search • ↑/↓ PgUp/PgDn scroll • Ctrl+Y copy • Esc quit"))

	return b.String()
}

// layoutColumns arranges entries column-major, like ls, in as many columns
// of the widest entry as fit in width.
func layoutColumns(entries []string, width int) []string {
	if len(entries) == 0 {
		return nil
	}

	colWidth := 0
	for _, e := range entries {
		if w := runewidth.StringWidth(e); w > colWidth {
			colWidth = w
		}
	}
	colWidth += 2

	cols := width / colWidth
	if cols < 1 {
		cols = 1
	}
	rows := (len(entries) + cols - 1) / cols

	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		var sb strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(entries) {
				break
			}
			sb.WriteString(runewidth.FillRight(entries[i], colWidth))
		}
		lines[r] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}
