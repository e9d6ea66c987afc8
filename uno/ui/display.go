package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Printer writes game messages, pausing after each one so a person can follow along.
type Printer struct {
	out    io.Writer
	delay  time.Duration
	humans map[string]bool
	turns  bool
}

func NewPrinter(out io.Writer, delay time.Duration) *Printer {
	return &Printer{out: out, delay: delay, humans: make(map[string]bool)}
}

// Reveal shows the cards the named players draw instead of only counting them.
func (p *Printer) Reveal(names ...string) {
	for _, name := range names {
		p.humans[name] = true
	}
}

// FollowTurns prints the mover, the top card and the mover's hand at the start of every turn.
func (p *Printer) FollowTurns() {
	p.turns = true
}

func (p *Printer) Printfln(format string, args ...interface{}) {
	p.Println(fmt.Sprintf(format, args...))
}

func (p *Printer) Printlns(lines []string) {
	p.Println(strings.Join(lines, "\n"))
}

func (p *Printer) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(p.out, args...)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}
