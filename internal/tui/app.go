package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/logging"
	"github.com/f3rmion/snack/internal/snack"
)

// maxSuggestions is the length of the autocomplete list.
const maxSuggestions = 6

// Catalog resolves and autocompletes guesses.
type Catalog interface {
	engine.Resolver
	Search(query string, limit int) []snack.Item
}

// SaveFunc persists a turn. It may be nil.
type SaveFunc func(engine.Turn) error

// ShareFunc publishes a finished session, e.g. to the clipboard.
type ShareFunc func(*engine.Session) error

// Key bindings
var keys = struct {
	Submit key.Binding
	Accept key.Binding
	Up     key.Binding
	Down   key.Binding
	GiveUp key.Binding
	Share  key.Binding
	Help   key.Binding
	Quit   key.Binding
}{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
	Accept: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev suggestion")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next suggestion")),
	GiveUp: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "give up")),
	Share:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy result")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// Model is the play screen for one session.
type Model struct {
	title   string
	catalog Catalog
	session *engine.Session
	save    SaveFunc
	share   ShareFunc

	input       textinput.Model
	suggestions []snack.Item
	selected    int
	err         error
	notice      string

	width    int
	height   int
	showHelp bool
}

// New creates the play screen. The session may already hold guesses when a
// stored game is resumed.
func New(title string, catalog Catalog, session *engine.Session, save SaveFunc) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a guess..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		title:   title,
		catalog: catalog,
		session: session,
		save:    save,
		input:   ti,
	}
}

// WithShare enables copying the result grid once the game is over.
func (m Model) WithShare(fn ShareFunc) Model {
	m.share = fn
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Session returns the session being played.
func (m Model) Session() *engine.Session { return m.session }

// Suggestions returns the current autocomplete list.
func (m Model) Suggestions() []snack.Item { return m.suggestions }

// Err returns the message shown for the last rejected action.
func (m Model) Err() error { return m.err }

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.showHelp = true
			return m, nil
		}

		if m.session.IsGameOver() {
			switch {
			case key.Matches(msg, keys.Submit):
				return m, tea.Quit
			case key.Matches(msg, keys.Share) && m.share != nil:
				if err := m.share(m.session); err != nil {
					m.err = err
				} else {
					m.err = nil
					m.notice = "Result copied to clipboard"
				}
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.GiveUp):
			m.giveUp()
			return m, nil
		case key.Matches(msg, keys.Submit):
			m.submit()
			return m, nil
		case key.Matches(msg, keys.Accept):
			if len(m.suggestions) > 0 {
				m.input.SetValue(m.suggestions[m.selected].Name)
				m.input.CursorEnd()
				m.refreshSuggestions()
			}
			return m, nil
		case key.Matches(msg, keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.selected < len(m.suggestions)-1 {
				m.selected++
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.err = nil
		m.refreshSuggestions()
	}
	return m, cmd
}

// submit guesses the typed name. Text that is not a known name is completed
// only when it narrows to a single suggestion; otherwise it is rejected and
// tab picks a suggestion.
func (m *Model) submit() {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		return
	}
	if _, err := m.catalog.Resolve(name); err != nil && len(m.suggestions) == 1 {
		name = m.suggestions[0].Name
	}

	turn, err := m.session.SubmitName(m.catalog, name)
	if err != nil {
		m.err = err
		return
	}
	m.persist(turn)

	logging.Debug("guess", "name", turn.Guess.Name, "attempts", m.session.Attempts(), "status", turn.Status)
	m.err = nil
	m.input.SetValue("")
	m.suggestions = nil
	m.selected = 0
}

func (m *Model) giveUp() {
	m.session.GiveUp()
	m.persist(engine.Turn{Clues: m.session.Clues(), Status: m.session.Status()})
	m.suggestions = nil
	logging.Info("gave up", "attempts", m.session.Attempts())
}

func (m *Model) persist(turn engine.Turn) {
	if m.save == nil {
		return
	}
	if err := m.save(turn); err != nil {
		logging.Error("saving turn", "err", err)
		m.err = fmt.Errorf("progress not saved: %w", err)
	}
}

// refreshSuggestions searches the catalog for the typed text, leaving out
// names already guessed.
func (m *Model) refreshSuggestions() {
	m.selected = 0
	m.suggestions = nil

	q := strings.TrimSpace(m.input.Value())
	if q == "" {
		return
	}
	for _, it := range m.catalog.Search(q, maxSuggestions+m.session.Attempts()) {
		if m.session.HasGuessed(it.Name) {
			continue
		}
		m.suggestions = append(m.suggestions, it)
		if len(m.suggestions) == maxSuggestions {
			break
		}
	}
}

// View renders the UI
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("guess %d", m.session.Attempts()+1)))
	b.WriteString("\n\n")

	switch {
	case m.session.IsSolved():
		b.WriteString(WinStyle.Render(fmt.Sprintf("Found %s in %d %s!", m.session.Secret().Name, m.session.Attempts(), plural(m.session.Attempts(), "guess", "guesses"))))
	case m.session.GaveUp():
		b.WriteString(RevealStyle.Render("The answer was " + m.session.Secret().Name))
	default:
		b.WriteString(SearchBoxStyle.Render(m.input.View()))
		if len(m.suggestions) > 0 {
			b.WriteString("\n")
			b.WriteString(m.renderSuggestions())
		}
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(describe(m.err)))
		b.WriteString("\n")
	} else if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(RenderHistory(m.session.Schema(), m.session.Guesses())))
	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(RenderClues(m.session.Schema(), m.session.Clues())))
	b.WriteString("\n\n")

	switch {
	case m.session.IsGameOver() && m.share != nil:
		b.WriteString(HelpStyle.Render("c: copy result • enter/esc: quit"))
	case m.session.IsGameOver():
		b.WriteString(HelpStyle.Render("enter/esc: quit"))
	default:
		b.WriteString(HelpStyle.Render("enter: guess • tab: complete • ↑/↓: pick • ctrl+g: give up • ?: help • esc: quit"))
	}

	return ContentStyle.Render(b.String())
}

func (m Model) renderSuggestions() string {
	var lines []string
	for i, it := range m.suggestions {
		style := SuggestionStyle
		if i == m.selected {
			style = SuggestionActiveStyle
		}
		lines = append(lines, style.Render(it.Name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderHelp renders the help overlay
func (m Model) renderHelp() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	helpText := TitleStyle.Render(m.title) + "\n\n"

	helpText += sectionStyle.Render("Keys") + "\n"
	for _, k := range []key.Binding{keys.Submit, keys.Accept, keys.Up, keys.Down, keys.GiveUp, keys.Share, keys.Help, keys.Quit} {
		h := k.Help()
		helpText += keyStyle.Render(h.Key) + ValueStyle.Render(h.Desc) + "\n"
	}

	helpText += sectionStyle.Render("Feedback") + "\n"
	helpText += keyStyle.Render(Mark(snack.Match)) + ValueStyle.Render("Same as the answer") + "\n"
	helpText += keyStyle.Render(Mark(snack.Higher)) + ValueStyle.Render("Answer is higher") + "\n"
	helpText += keyStyle.Render(Mark(snack.Lower)) + ValueStyle.Render("Answer is lower") + "\n"
	helpText += keyStyle.Render(Mark(snack.Partial)) + ValueStyle.Render("Some values shared") + "\n"
	helpText += keyStyle.Render(Mark(snack.Different)) + ValueStyle.Render("Nothing in common") + "\n"

	helpText += "\n" + HelpStyle.Italic(true).Render("Press any key to close")

	helpBox := BoxStyle.Padding(1, 2).Width(50).Render(helpText)
	if m.width == 0 || m.height == 0 {
		return helpBox
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}

// describe turns engine errors into short player-facing messages.
func describe(err error) string {
	var dup *snack.DuplicateGuessError
	var unknown *snack.UnknownItemError
	switch {
	case errors.As(err, &dup):
		return "Already guessed " + dup.Name
	case errors.As(err, &unknown):
		return fmt.Sprintf("No match for %q", unknown.Query)
	default:
		return err.Error()
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
