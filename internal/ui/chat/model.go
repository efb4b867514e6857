// Package chat is the research-assistant view: a scrolling transcript with
// tool-call badges, a multiline composer, and a stored-session browser.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

type Deps struct {
	Send          func(req api.CompletionRequest) tea.Cmd
	Sessions      func() tea.Cmd
	OpenSession   func(id string) tea.Cmd
	DeleteSession func(id string) tea.Cmd
}

type viewState int

const (
	stateChat viewState = iota
	stateSessions
)

type Model struct {
	deps Deps

	state     viewState
	sessionID string
	messages  []api.ChatMessage

	// pendingID is the message_id of the in-flight turn; a reply for any
	// other id is stale and dropped.
	pendingID string
	waiting   bool

	sessions      []api.ChatSession
	sessionCursor int

	transcript viewport.Model
	composer   textarea.Model
	spinner    spinner.Model
	err        error
	width      int
	height     int
}

func New(deps Deps) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask about your artifacts..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Muted

	vp := viewport.New(80, 20)

	return Model{deps: deps, transcript: vp, composer: ta, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.transcript.Width = w - 4
	m.transcript.Height = h - 9
	if m.transcript.Height < 5 {
		m.transcript.Height = 5
	}
	m.composer.SetWidth(w - 4)
	m.refreshTranscript()
}

// Capturing reports whether the composer owns the keyboard. True whenever
// the chat pane itself is showing; the session browser uses list keys.
func (m Model) Capturing() bool {
	return m.state == stateChat
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ChatReply:
		if msg.Err != nil {
			m.waiting = false
			m.pendingID = ""
			m.err = msg.Err
			return m, nil
		}
		// Replies carry the echoed message id via the assistant turn's
		// parentage only implicitly; session match is the guard here.
		if m.sessionID != "" && msg.Reply.SessionID != m.sessionID {
			return m, nil
		}
		m.waiting = false
		m.pendingID = ""
		m.err = nil
		m.sessionID = msg.Reply.SessionID
		m.messages = append(m.messages, msg.Reply.Message)
		m.refreshTranscript()
		m.transcript.GotoBottom()
		return m, nil

	case ui.SessionsLoaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.sessions = msg.Sessions
		if m.sessionCursor >= len(m.sessions) {
			m.sessionCursor = 0
		}
		return m, nil

	case ui.SessionLoaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.state = stateChat
		m.sessionID = msg.Session.ID
		m.messages = msg.Session.Messages
		m.pendingID = ""
		m.waiting = false
		m.refreshTranscript()
		m.transcript.GotoBottom()
		return m, nil

	case ui.OpDone:
		if msg.Kind == "delete_session" && msg.Err == nil {
			return m, m.deps.Sessions()
		}
		if msg.Err != nil {
			m.err = msg.Err
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.state == stateSessions {
		return m.handleSessionsKey(msg)
	}

	switch msg.String() {
	case "ctrl+s":
		return m.send()
	case "ctrl+n":
		m.sessionID = ""
		m.messages = nil
		m.pendingID = ""
		m.waiting = false
		m.err = nil
		m.refreshTranscript()
		return m, nil
	case "ctrl+o":
		m.state = stateSessions
		return m, m.deps.Sessions()
	case "pgup":
		m.transcript.HalfViewUp()
		return m, nil
	case "pgdown":
		m.transcript.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

func (m Model) handleSessionsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "ctrl+o":
		m.state = stateChat
	case "j", "down":
		if m.sessionCursor < len(m.sessions)-1 {
			m.sessionCursor++
		}
	case "k", "up":
		if m.sessionCursor > 0 {
			m.sessionCursor--
		}
	case "enter":
		if m.sessionCursor < len(m.sessions) {
			return m, m.deps.OpenSession(m.sessions[m.sessionCursor].ID)
		}
	case "x":
		if m.sessionCursor < len(m.sessions) {
			return m, m.deps.DeleteSession(m.sessions[m.sessionCursor].ID)
		}
	}
	return m, nil
}

func (m Model) send() (Model, tea.Cmd) {
	if m.waiting {
		return m, nil // one turn at a time
	}
	content := strings.TrimSpace(m.composer.Value())
	if content == "" {
		return m, nil
	}

	id := uuid.NewString()
	m.pendingID = id
	m.waiting = true
	m.err = nil
	m.messages = append(m.messages, api.ChatMessage{ID: id, Role: "user", Content: content})
	m.composer.Reset()
	m.refreshTranscript()
	m.transcript.GotoBottom()

	return m, m.deps.Send(api.CompletionRequest{
		SessionID: m.sessionID,
		MessageID: id,
		Content:   content,
	})
}
