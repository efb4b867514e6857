package chat

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
)

func testDeps(sent *[]api.CompletionRequest) Deps {
	return Deps{
		Send: func(req api.CompletionRequest) tea.Cmd {
			*sent = append(*sent, req)
			return nil
		},
		Sessions:      func() tea.Cmd { return nil },
		OpenSession:   func(id string) tea.Cmd { return nil },
		DeleteSession: func(id string) tea.Cmd { return nil },
	}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func ctrl(s string) tea.KeyMsg {
	switch s {
	case "s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	}
	return tea.KeyMsg{}
}

func TestSendGeneratesMessageID(t *testing.T) {
	var sent []api.CompletionRequest
	m := New(testDeps(&sent))

	m = typeText(m, "what changed today")
	m, _ = m.Update(ctrl("s"))

	if len(sent) != 1 {
		t.Fatalf("expected one request sent, got %d", len(sent))
	}
	if sent[0].MessageID == "" {
		t.Error("expected a client-generated message id")
	}
	if sent[0].Content != "what changed today" {
		t.Errorf("unexpected content %q", sent[0].Content)
	}
	if sent[0].SessionID != "" {
		t.Errorf("first turn must not carry a session id, got %q", sent[0].SessionID)
	}
	if !m.waiting {
		t.Error("expected model waiting after send")
	}
}

func TestSecondSendBlockedWhileWaiting(t *testing.T) {
	var sent []api.CompletionRequest
	m := New(testDeps(&sent))

	m = typeText(m, "first")
	m, _ = m.Update(ctrl("s"))
	m = typeText(m, "second")
	m, _ = m.Update(ctrl("s"))

	if len(sent) != 1 {
		t.Fatalf("expected only the first turn sent, got %d", len(sent))
	}
}

func TestReplyAdoptsSessionAndAppends(t *testing.T) {
	var sent []api.CompletionRequest
	m := New(testDeps(&sent))

	m = typeText(m, "hello")
	m, _ = m.Update(ctrl("s"))

	m, _ = m.Update(ui.ChatReply{Reply: api.CompletionReply{
		SessionID: "sess-1",
		Message:   api.ChatMessage{ID: "a1", Role: "assistant", Content: "hi"},
	}})

	if m.sessionID != "sess-1" {
		t.Errorf("expected session adopted from reply, got %q", m.sessionID)
	}
	if m.waiting {
		t.Error("expected waiting cleared after reply")
	}
	if len(m.messages) != 2 || m.messages[1].Role != "assistant" {
		t.Fatalf("expected user+assistant transcript, got %d messages", len(m.messages))
	}

	// Follow-up turn carries the adopted session
	m = typeText(m, "and then?")
	m, _ = m.Update(ctrl("s"))
	if sent[1].SessionID != "sess-1" {
		t.Errorf("expected follow-up to reuse session, got %q", sent[1].SessionID)
	}
}

func TestReplyForOtherSessionDropped(t *testing.T) {
	var sent []api.CompletionRequest
	m := New(testDeps(&sent))
	m.sessionID = "sess-1"

	m, _ = m.Update(ui.ChatReply{Reply: api.CompletionReply{
		SessionID: "sess-other",
		Message:   api.ChatMessage{Role: "assistant", Content: "stale"},
	}})

	if len(m.messages) != 0 {
		t.Error("reply for another session must be dropped")
	}
}

func TestNewConversationResets(t *testing.T) {
	var sent []api.CompletionRequest
	m := New(testDeps(&sent))
	m.sessionID = "sess-1"
	m.messages = []api.ChatMessage{{Role: "user", Content: "old"}}

	m, _ = m.Update(ctrl("n"))
	if m.sessionID != "" || len(m.messages) != 0 {
		t.Error("ctrl+n must clear the session and transcript")
	}
}

func TestWrapLongLines(t *testing.T) {
	got := wrap("aaaa bbbb cccc dddd", 9)
	want := "aaaa bbbb\ncccc dddd"
	if got != want {
		t.Errorf("wrap mismatch:\n got %q\nwant %q", got, want)
	}
}
