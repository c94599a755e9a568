package generator

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"algovanity/pkg/logx"
)

// status renders search progress: a rewritten one-line counter on a
// terminal, periodic log entries otherwise. Rates come from the
// measured time between ticks, not from an assumed interval.
type status struct {
	w      *os.File
	tty    bool
	lastN  uint64
	lastAt time.Time
	active bool // a \r line is currently on screen

	lineStyle  lipgloss.Style
	foundStyle lipgloss.Style
}

func newStatus(w *os.File) *status {
	return &status{
		w:          w,
		tty:        term.IsTerminal(int(w.Fd())),
		lastAt:     time.Now(),
		lineStyle:  lipgloss.NewStyle().Faint(true),
		foundStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

func (s *status) render(now time.Time, n uint64) {
	elapsed := now.Sub(s.lastAt)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(n-s.lastN) / elapsed.Seconds()
	}
	s.lastN, s.lastAt = n, now

	if !s.tty {
		logx.S().Infow("progress",
			"attempts", n,
			"rate_addr_per_sec", fmt.Sprintf("%.0f", rate),
		)
		return
	}
	line := fmt.Sprintf("Searched addresses: %13s (~%s/sec)", groupDigits(n), groupDigits(uint64(rate)))
	fmt.Fprintf(s.w, "\r%s", s.lineStyle.Render(line))
	s.active = true
}

// found ends the live counter line and announces a match. The full
// record goes through the structured log; only the address is shown
// here.
func (s *status) found(addr string) {
	if !s.tty {
		return
	}
	s.clear()
	fmt.Fprintf(s.w, "%s %s\n", s.foundStyle.Render("Found!"), addr)
}

func (s *status) clear() {
	if s.active {
		fmt.Fprintln(s.w)
		s.active = false
	}
}

// groupDigits formats n with thousands separators.
func groupDigits(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
