package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jlozano/riskprep/internal/screen"
)

type fakeScreen struct {
	name    string
	inited  bool
	lastMsg tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inited = true
	return nil
}
func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.lastMsg = msg
	return f, nil
}
func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestPush_RunsInitAndBecomesActive(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	quiz := &fakeScreen{name: "quiz"}

	r.Push(quiz)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
	if !quiz.inited {
		t.Error("pushed screen was not initialized")
	}
}

func TestPop_ReturnsToPreviousScreen(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "quiz"})

	r.Pop()

	if r.Depth() != 1 || r.Active().Title() != "home" {
		t.Errorf("after pop: depth = %d active = %q", r.Depth(), r.Active().Title())
	}
}

func TestPop_HomeScreenStays(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, home must never pop", r.Depth())
	}
}

func TestReplace_SwapsTopKeepingDepth(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Push(&fakeScreen{name: "simulator"})
	hist := &fakeScreen{name: "history"}

	r.Replace(hist)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want unchanged 2", r.Depth())
	}
	if r.Active().Title() != "history" {
		t.Errorf("active = %q, want history", r.Active().Title())
	}
	if !hist.inited {
		t.Error("replacement screen was not initialized")
	}
}

func TestUpdate_RoutesNavigationMessages(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)

	quiz := &fakeScreen{name: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})
	if r.Active().Title() != "quiz" {
		t.Fatalf("active = %q after push msg", r.Active().Title())
	}

	hist := &fakeScreen{name: "history"}
	r.Update(ReplaceScreenMsg{Screen: hist})
	if r.Active().Title() != "history" {
		t.Fatalf("active = %q after replace msg", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("active = %q after pop msg", r.Active().Title())
	}
}

func TestUpdate_ForwardsToActiveScreenOnly(t *testing.T) {
	home := &fakeScreen{name: "home"}
	quiz := &fakeScreen{name: "quiz"}
	r := New(home)
	r.Push(quiz)

	type pingMsg struct{}
	r.Update(pingMsg{})

	if _, ok := quiz.lastMsg.(pingMsg); !ok {
		t.Error("active screen did not receive the message")
	}
	if home.lastMsg != nil {
		t.Error("covered screen received a message")
	}
}
