package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// errQuit is returned once the input is exhausted; every menu unwinds on it.
var errQuit = errors.New("input closed")

// Console reads answers line by line and writes prompts and results.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	// fd is the terminal file descriptor used for hidden password entry,
	// or -1 when input is not a terminal.
	fd int

	// lock, when set, is held by the caller between reads and released
	// while a read blocks.
	lock sync.Locker
}

// NewConsole creates a Console over in and out. When in is a terminal,
// passwords are read without echo.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		in:  bufio.NewScanner(in),
		out: out,
		fd:  -1,
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.fd = int(f.Fd())
	}

	return c
}

// Printf writes formatted output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line of output.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Prompt writes label and returns the next input line with surrounding
// whitespace removed. It returns errQuit at end of input.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	c.release()
	ok := c.in.Scan()
	c.acquire()

	if !ok {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errQuit
	}

	return strings.TrimSpace(c.in.Text()), nil
}

// Password writes label and reads a password, without echo on a terminal.
func (c *Console) Password(label string) (string, error) {
	if c.fd < 0 {
		return c.Prompt(label)
	}

	fmt.Fprint(c.out, label)
	c.release()
	b, err := term.ReadPassword(c.fd)
	c.acquire()
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

// Confirm asks a yes/no question; only "yes" (any case) confirms.
func (c *Console) Confirm(label string) (bool, error) {
	answer, err := c.Prompt(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

func (c *Console) release() {
	if c.lock != nil {
		c.lock.Unlock()
	}
}

func (c *Console) acquire() {
	if c.lock != nil {
		c.lock.Lock()
	}
}
