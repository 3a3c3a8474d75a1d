package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wordlist/internal/domain"

	"go.uber.org/zap"
)

// ErrNotFound is returned when remove names an unknown id
var ErrNotFound = errors.New("no word with that id")

func (h *Handler) handleAdd(text string) error {
	entry, err := h.persistence.Add(text)
	if errors.Is(err, domain.ErrEmptyText) {
		return fmt.Errorf("%w: add <text>", ErrUsage)
	}
	if err != nil {
		return err
	}

	h.logger.Info("Word added", zap.String("id", entry.ID), zap.String("text", entry.Text))
	fmt.Fprintf(h.out, "added %s %s\n", entry.ID, entry.Text)
	return nil
}

func (h *Handler) handleRemove(rest string) error {
	args := strings.Fields(rest)
	if len(args) != 1 {
		return fmt.Errorf("%w: remove <id>", ErrUsage)
	}
	id := args[0]

	if !h.persistence.Remove(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	h.logger.Info("Word removed", zap.String("id", id))
	fmt.Fprintf(h.out, "removed %s\n", id)
	return nil
}

func (h *Handler) handleList() error {
	h.printEntries(h.persistence.Query(), "no words yet")
	return nil
}

func (h *Handler) handleFind(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: find <text>", ErrUsage)
	}
	h.printEntries(h.persistence.Find(text), "no matches")
	return nil
}

func (h *Handler) handleSave(ctx context.Context) error {
	list := h.persistence.Query()
	if err := h.persistence.Save(ctx, list); err != nil {
		return err
	}
	fmt.Fprintf(h.out, "saved %d words\n", len(list))
	return nil
}

func (h *Handler) printEntries(list domain.WordList, empty string) {
	if len(list) == 0 {
		fmt.Fprintln(h.out, empty)
		return
	}
	for i, e := range list {
		fmt.Fprintf(h.out, "%d. %s  (%s)\n", i+1, e.Text, e.ID)
	}
}
