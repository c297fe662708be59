package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/recipebot/internal/chat"
	"github.com/alexanderramin/recipebot/internal/cli/formatter"
	"github.com/alexanderramin/recipebot/internal/logging"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Rows reserved below the transcript for the prompt and key hints.
const chatChromeHeight = 3

// catalogReloadedMsg is sent by the file watcher after the recipe catalog
// changed on disk and the cache was dropped.
type catalogReloadedMsg struct{}

type chatKeyMap struct {
	Send, Quit, Prev, Next, PageUp, PageDown key.Binding
}

var chatKeys = chatKeyMap{
	Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	Prev:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "history")),
	Next:     key.NewBinding(key.WithKeys("down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
}

// chatModel is the interactive dinner chat. Replies are computed
// synchronously inside Update.
type chatModel struct {
	ctx     context.Context
	handler *chat.Handler
	session *chat.Session
	history *chatHistory
	logger  *zap.Logger

	input    textinput.Model
	viewport viewport.Model
	ready    bool
	quitting bool

	transcript []string
}

func newChatModel(ctx context.Context, app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "What to cook?"

	provider, _ := app.availabilityFor("", app.defaultMinutes(), false)

	m := &chatModel{
		ctx: ctx,
		handler: &chat.Handler{
			Recommend:    app.Recommend,
			Meals:        app.Meals,
			Nutrition:    app.Nutrition,
			Pantry:       app.Pantry,
			Catalog:      app.Catalog,
			Availability: provider,
		},
		session: chat.NewSession(),
		history: newChatHistory(app.HistoryPath),
		logger:  logging.OrNop(app.Logger),
		input:   ti,
	}
	m.transcript = append(m.transcript, welcomeMessage())
	return m
}

func welcomeMessage() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("🍳 RecipeBot"))
	b.WriteString(formatter.Dim(" — ask me what's for dinner.\n"))
	for i, p := range chat.StarterPrompts {
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.StylePurple.Render(strconv.Itoa(i+1)), p))
	}
	b.WriteString(formatter.Dim("Type a number to use a starter."))
	return b.String()
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-chatChromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.input.Width = max(msg.Width-len("you> ")-1, 10)
		m.refresh()
		return m, nil

	case catalogReloadedMsg:
		m.appendLine(formatter.Dim("Recipes reloaded from disk."))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, chatKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, chatKeys.Send):
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			return m.submit(text)
		case key.Matches(msg, chatKeys.Prev):
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil
		case key.Matches(msg, chatKeys.Next):
			m.input.SetValue(m.history.Next())
			m.input.CursorEnd()
			return m, nil
		case key.Matches(msg, chatKeys.PageUp, chatKeys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) submit(text string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(text) {
	case "/quit", "/exit", "/q", "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	}
	m.history.Add(text)

	if len(m.session.Messages) == 0 {
		if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(chat.StarterPrompts) {
			text = chat.StarterPrompts[n-1]
		}
	}

	m.appendLine(formatter.Dim("You: ") + text)
	reply, err := m.handler.Respond(m.ctx, m.session, text)
	if err != nil {
		m.logger.Warn("chat reply failed", zap.String("input", text), zap.Error(err))
		m.appendLine(formatter.StyleRed.Render("Something went wrong: " + err.Error()))
		return m, nil
	}
	m.appendLine(formatter.StyleGreen.Render("RecipeBot: ") + reply)
	return m, nil
}

func (m *chatModel) appendLine(s string) {
	m.transcript = append(m.transcript, s)
	m.refresh()
}

func (m *chatModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
	m.viewport.GotoBottom()
}

func (m *chatModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(strings.Join(m.transcript, "\n\n"))
	}
	b.WriteString("\n")
	b.WriteString(formatter.StylePurple.Render("you") + formatter.Dim("> "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim(shortHelp(chatKeys.Send, chatKeys.Prev, chatKeys.PageUp, chatKeys.Quit)))
	return b.String()
}

func shortHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
