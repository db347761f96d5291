package console

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Console is the line based terminal boundary of the game.
type Console interface {
	// ReadLine prints prompt and returns the next input line without its
	// line terminator. ok is false once input is exhausted or the console
	// has been cancelled.
	ReadLine(prompt string) (line string, ok bool)
	Print(text string)
}

// StdioConsole reads lines on a separate goroutine so a pending read can be
// abandoned when ctx is done.
type StdioConsole struct {
	ctx   context.Context
	lines chan string
	out   *bufio.Writer
}

var _ Console = (*StdioConsole)(nil)

func NewStdioConsole(ctx context.Context, r io.Reader, w io.Writer) *StdioConsole {
	sc := &StdioConsole{
		ctx:   ctx,
		lines: make(chan string),
		out:   bufio.NewWriter(w),
	}
	go sc.scan(bufio.NewScanner(r))
	return sc
}

func (sc *StdioConsole) scan(scanner *bufio.Scanner) {
	defer close(sc.lines)

	for scanner.Scan() {
		select {
		case sc.lines <- strings.TrimRight(scanner.Text(), "\r"):
		case <-sc.ctx.Done():
			return
		}
	}
}

func (sc *StdioConsole) ReadLine(prompt string) (string, bool) {
	sc.Print(prompt)

	select {
	case line, ok := <-sc.lines:
		return line, ok
	case <-sc.ctx.Done():
		sc.Print("\n")
		return "", false
	}
}

func (sc *StdioConsole) Print(text string) {
	sc.out.WriteString(text)
	sc.out.Flush()
}
