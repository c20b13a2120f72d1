package app

import (
	"fmt"
	"strings"

	"adc-monitor.klederson.com/internal/config"
)

// Console is the interactive command surface carried over from the serial
// CLI: typed characters are echoed, and a line starting with the avg
// command prints the currently published average. It holds plain state so
// the command behavior is testable without a terminal.
type Console struct {
	input string
	lines []string
	max   int
}

// NewConsole creates an empty console with a bounded scrollback.
func NewConsole(scrollback int) *Console {
	return &Console{max: scrollback}
}

// Type appends characters to the current input line.
func (c *Console) Type(s string) {
	c.input += s
}

// Backspace removes the last typed character, if any.
func (c *Console) Backspace() {
	if len(c.input) > 0 {
		c.input = c.input[:len(c.input)-1]
	}
}

// Input returns the line being typed.
func (c *Console) Input() string {
	return c.input
}

// Submit finishes the current line: the line is echoed, and if it invokes
// the avg command the given average is printed. The prefix match mirrors
// the original serial interface, so "avg", "avg " and "avgfoo" all work.
func (c *Console) Submit(avg float64) {
	line := c.input
	c.input = ""

	c.append("> " + line)
	if strings.HasPrefix(line, config.AvgCommand) {
		c.append(fmt.Sprintf("Average: %.2f", avg))
	}
}

// Lines returns up to n of the most recent console lines, oldest first.
func (c *Console) Lines(n int) []string {
	if n >= len(c.lines) {
		return c.lines
	}
	return c.lines[len(c.lines)-n:]
}

func (c *Console) append(line string) {
	c.lines = append(c.lines, line)
	if len(c.lines) > c.max {
		c.lines = c.lines[len(c.lines)-c.max:]
	}
}
