package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"wordlist/internal/service"

	"go.uber.org/zap"
)

// ErrQuit is returned by Execute when the shell should stop
var ErrQuit = errors.New("quit")

// ErrUsage is returned for unknown commands or missing arguments
var ErrUsage = errors.New("usage")

// Handler turns text commands into Persistence operations
type Handler struct {
	persistence *service.Persistence
	logger      *zap.Logger
	out         io.Writer
}

// NewHandler creates a new handler instance
func NewHandler(persistence *service.Persistence, out io.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		persistence: persistence,
		logger:      logger,
		out:         out,
	}
}

// cleanInput removes all non-printable characters from a command line
func cleanInput(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		if unicode.IsSpace(r) {
			return ' '
		}
		return -1
	}, strings.TrimSpace(line))
}

// Execute runs a single command given as command-line arguments
func (h *Handler) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return h.usage()
	}
	return h.dispatch(ctx, args[0], strings.Join(args[1:], " "))
}

// ExecuteLine runs a single shell line, keeping the text after the command word as typed
func (h *Handler) ExecuteLine(ctx context.Context, line string) error {
	command, rest := splitCommand(line)
	if command == "" {
		return h.usage()
	}
	return h.dispatch(ctx, command, rest)
}

// splitCommand separates the first word from the rest of the line
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

func (h *Handler) dispatch(ctx context.Context, command, rest string) error {
	switch strings.ToLower(command) {
	case "add":
		return h.handleAdd(rest)
	case "remove", "rm":
		return h.handleRemove(rest)
	case "list", "ls":
		return h.handleList()
	case "find":
		return h.handleFind(rest)
	case "save":
		return h.handleSave(ctx)
	case "help":
		h.printHelp()
		return nil
	case "quit", "exit":
		return ErrQuit
	default:
		return h.usage()
	}
}

// RunShell reads one command per line from in until EOF, quit, or ctx is done.
// Command errors are reported to the user and do not stop the shell.
func (h *Handler) RunShell(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := cleanInput(scanner.Text())
		if line == "" {
			continue
		}

		err := h.ExecuteLine(ctx, line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			h.logger.Debug("Command failed", zap.String("line", line), zap.Error(err))
			fmt.Fprintf(h.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (h *Handler) usage() error {
	h.printHelp()
	return ErrUsage
}

func (h *Handler) printHelp() {
	fmt.Fprint(h.out, `commands:
  add <text>     add a word
  remove <id>    remove a word by id
  list           show all words
  find <text>    show words matching text
  save           write the list to storage
  quit           leave the shell
`)
}
