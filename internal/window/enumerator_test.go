package window_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bryanchriswhite/winsnap/internal/fakes"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

func newEnumerator(session *fakes.Session) *window.Enumerator {
	return window.NewEnumerator(window.NewTreeWalker(session), window.NewPropertyResolver(session))
}

func TestEnumeratorListsTitledWindows(t *testing.T) {
	session := sampleTree()

	titles, err := newEnumerator(session).List(session.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("expected %v, got %v", want, titles)
	}
	if !session.Balanced() {
		t.Fatalf("expected balanced child lists, got %d acquired and %d released", session.Acquired, session.Released)
	}
}

func TestEnumeratorPreOrderWithRoot(t *testing.T) {
	// root:"Desktop" -> {a:"A" -> {a1:(legacy)"A1", a2:(none)}, b:"B"}
	session := fakes.NewSession(1).SetNetName(1, "Desktop")
	session.AddChild(1, 0xa, "A").
		AddUntitled(0xa, 0xa1).
		AddUntitled(0xa, 0xa2).
		AddChild(1, 0xb, "B").
		SetLegacyName(0xa1, "A1")

	titles, err := newEnumerator(session).List(session.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Desktop", "A", "A1", "B"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("expected %v, got %v", want, titles)
	}
	if session.Acquired != 5 || !session.Balanced() {
		t.Fatalf("expected 5 balanced queries, got %d acquired and %d released", session.Acquired, session.Released)
	}
}

func TestEnumeratorEmptyTree(t *testing.T) {
	session := fakes.NewSession(1)

	titles, err := newEnumerator(session).List(session.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if titles == nil || len(titles) != 0 {
		t.Fatalf("expected an empty list, got %#v", titles)
	}
}

func TestEnumeratorIdempotent(t *testing.T) {
	session := sampleTree()
	enumerator := newEnumerator(session)

	first, err := enumerator.List(session.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := enumerator.List(session.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical lists, got %v and %v", first, second)
	}
}

func TestEnumeratorTreeQueryFailure(t *testing.T) {
	session := sampleTree().FailTree(1, errors.New("BadWindow"))

	titles, err := newEnumerator(session).List(session.Root())
	var treeErr *window.TreeQueryError
	if !errors.As(err, &treeErr) {
		t.Fatalf("expected TreeQueryError, got %v", err)
	}
	if titles != nil {
		t.Fatalf("expected no partial result, got %v", titles)
	}
}

func TestEnumeratorNestedFailureDropsPartialResult(t *testing.T) {
	session := sampleTree().FailTree(0x20, errors.New("BadWindow"))

	titles, err := newEnumerator(session).List(session.Root())
	if err == nil {
		t.Fatal("expected an error")
	}
	if titles != nil {
		t.Fatalf("expected no partial result, got %v", titles)
	}
	if !session.Balanced() {
		t.Fatalf("expected balanced child lists, got %d acquired and %d released", session.Acquired, session.Released)
	}
}
