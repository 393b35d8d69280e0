package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Makepad-fr/tada-menu/internal/logging"
	"github.com/Makepad-fr/tada-menu/internal/todo"
	"github.com/Makepad-fr/tada-menu/internal/ui"
)

// Menu commands, matched against the trimmed input line.
const (
	cmdAdd    = "1"
	cmdList   = "2"
	cmdDelete = "3"
	cmdQuit   = "4"
)

var (
	// ErrInput is returned by Run when the console can no longer be read.
	// Running out of input counts as a read failure.
	ErrInput = errors.New("read input")

	ErrUnknownCommand = errors.New("invalid choice, enter a number between 1 and 4")
)

// Session runs the numbered menu over a line-oriented console.
type Session struct {
	list *todo.List
	in   *bufio.Reader
	p    *ui.Printer
	log  *slog.Logger
}

// New returns a session over list. A nil logger discards records.
func New(list *todo.List, in io.Reader, p *ui.Printer, log *slog.Logger) *Session {
	if log == nil {
		log = logging.Discard()
	}
	return &Session{list: list, in: bufio.NewReader(in), p: p, log: log}
}

// Run prints the banner and dispatches commands until the user quits
// (nil) or input fails (an error wrapping ErrInput).
func (s *Session) Run() error {
	s.p.Title(ui.Banner(s.p.Theme(), "To-Do List"))
	for {
		s.printMenu()
		choice, err := s.readLine()
		if err != nil {
			return err
		}
		s.log.Debug("dispatch", "command", choice, "items", s.list.Len())

		switch choice {
		case cmdAdd:
			err = s.add()
		case cmdList:
			s.show()
		case cmdDelete:
			err = s.remove()
		case cmdQuit:
			s.p.Blank()
			s.p.OK("Thanks for using, bye!")
			return nil
		default:
			s.p.Blank()
			s.reject(ErrUnknownCommand)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) printMenu() {
	s.p.Println("Choose an action:")
	s.p.Println(cmdAdd + ". Add an item")
	s.p.Println(cmdList + ". Show all items")
	s.p.Println(cmdDelete + ". Delete an item")
	s.p.Println(cmdQuit + ". Quit")
	s.p.Prompt("Enter a number (1-4): ")
}

// readLine blocks for one line and trims surrounding whitespace.
// A final line without a newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("%w: %w", ErrInput, err)
	}
	return strings.TrimSpace(line), nil
}

// reject reports a validation error; the list is left as it was.
func (s *Session) reject(err error) {
	s.log.Debug("rejected", "err", err)
	s.p.Fail(err.Error())
	if errors.Is(err, todo.ErrNoSuchItem) {
		s.p.Hint("Hint: choose " + cmdList + " to see valid numbers")
	}
	s.p.Blank()
}
