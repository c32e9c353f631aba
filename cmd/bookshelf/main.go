package main

import (
	"errors"
	"fmt"
	"os"

	"bookshelf/internal/book"
	"bookshelf/internal/collection"
	"bookshelf/internal/config"
	"bookshelf/internal/logger"
	"bookshelf/internal/record"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	books, err := seedBooks()
	if err != nil {
		log.Error("Failed to seed books", zap.Error(err))
		os.Exit(1)
	}

	shelf := collection.New(books, log)
	view := newTableView(os.Stdout, shelf)
	shelf.Subscribe(view)
	defer shelf.Unsubscribe(view)

	if err := view.Render(); err != nil {
		log.Error("Failed to render shelf", zap.Error(err))
	}

	run(shelf, log)
}

func run(shelf *collection.BookCollection, log *zap.Logger) {
	kindred, err := book.New(book.Input{
		ID:     ptr(5),
		Title:  ptr("Kindred"),
		ISBN:   ptr("9780807083697"),
		Author: butler,
	})
	if err != nil {
		log.Error("Failed to build book", zap.Error(err))
		return
	}
	if err := shelf.Add(kindred); err != nil {
		log.Error("Failed to add book", zap.Error(err))
	} else {
		log.Info("Book added", zap.Int("id", kindred.ID), zap.Int("books", shelf.Len()))
	}

	updateBook(shelf, book.Input{ID: ptr(2), ISBN: ptr("9780441478125")}, log)
	updateBook(shelf, book.Input{ID: ptr(99), Title: ptr("Unwritten")}, log)
}

func updateBook(shelf *collection.BookCollection, in book.Input, log *zap.Logger) {
	err := shelf.Update(in)
	switch {
	case err == nil:
	case errors.Is(err, record.ErrNotFound):
		log.Warn("Book not on shelf", zap.Int("id", *in.ID))
	default:
		log.Error("Failed to update book", zap.Error(err))
	}
}

func ptr[T any](v T) *T { return &v }
