package window_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bryanchriswhite/winsnap/internal/fakes"
	"github.com/bryanchriswhite/winsnap/internal/logger"
	"github.com/bryanchriswhite/winsnap/internal/window"
)

func TestPropertyResolverResolve(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(s *fakes.Session)
		wantTitle string
		wantOK    bool
	}{
		{
			name:      "modern name",
			setup:     func(s *fakes.Session) { s.SetNetName(2, "Firefox") },
			wantTitle: "Firefox",
			wantOK:    true,
		},
		{
			name: "modern name wins over legacy",
			setup: func(s *fakes.Session) {
				s.SetNetName(2, "modern").SetLegacyName(2, "legacy")
			},
			wantTitle: "modern",
			wantOK:    true,
		},
		{
			name:      "legacy fallback",
			setup:     func(s *fakes.Session) { s.SetLegacyName(2, "xterm") },
			wantTitle: "xterm",
			wantOK:    true,
		},
		{
			name: "legacy fallback after read failure",
			setup: func(s *fakes.Session) {
				s.FailProperty(2, errors.New("BadAtom")).SetLegacyName(2, "xterm")
			},
			wantTitle: "xterm",
			wantOK:    true,
		},
		{
			name:   "read failure without legacy name",
			setup:  func(s *fakes.Session) { s.FailProperty(2, errors.New("BadAtom")) },
			wantOK: false,
		},
		{
			name:   "no name at all",
			setup:  func(s *fakes.Session) {},
			wantOK: false,
		},
		{
			name:      "empty modern name is still a title",
			setup:     func(s *fakes.Session) { s.SetNetName(2, "") },
			wantTitle: "",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := fakes.NewSession(1)
			tt.setup(session)

			title, ok := window.NewPropertyResolver(session).Resolve(2)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if title != tt.wantTitle {
				t.Fatalf("expected title %q, got %q", tt.wantTitle, title)
			}
		})
	}
}

func TestPropertyResolverUntitledIsNotAFailure(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter("debug", false, &buf)
	t.Cleanup(func() { logger.InitWriter("warn", false, &bytes.Buffer{}) })

	session := fakes.NewSession(1)
	if _, ok := window.NewPropertyResolver(session).Resolve(2); ok {
		t.Fatal("expected no title")
	}
	if strings.Contains(buf.String(), "read failed") {
		t.Fatalf("expected no read failure to be logged, got %s", buf.String())
	}

	buf.Reset()
	session.FailProperty(2, errors.New("BadAtom"))
	window.NewPropertyResolver(session).Resolve(2)
	if !strings.Contains(buf.String(), "_NET_WM_NAME read failed") {
		t.Fatalf("expected the read failure to be logged, got %s", buf.String())
	}
}
