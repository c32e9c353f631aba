package main

import (
	"fmt"

	"bookshelf/internal/author"
	"bookshelf/internal/book"
)

var (
	leGuin = mustAuthor(1, "Ursula K. Le Guin")
	butler = mustAuthor(2, "Octavia E. Butler")
	lem    = mustAuthor(3, "Stanisław Lem")
)

type seedBook struct {
	id     int
	title  string
	isbn   string
	author *author.Author
}

var seed = []seedBook{
	{1, "A Wizard of Earthsea", "9780547773742", leGuin},
	{2, "The Left Hand of Darkness", "", leGuin},
	{3, "Parable of the Sower", "9781538732182", butler},
	{4, "Solaris", "9780156027601", lem},
}

func seedBooks() ([]*book.Book, error) {
	books := make([]*book.Book, 0, len(seed))
	for _, s := range seed {
		in := book.Input{ID: ptr(s.id), Title: ptr(s.title), Author: s.author}
		if s.isbn != "" {
			in.ISBN = ptr(s.isbn)
		}
		b, err := book.New(in)
		if err != nil {
			return nil, fmt.Errorf("seed book %d: %w", s.id, err)
		}
		books = append(books, b)
	}
	return books, nil
}

func mustAuthor(id int, name string) *author.Author {
	a, err := author.New(author.Input{ID: ptr(id), Name: ptr(name)})
	if err != nil {
		panic(err)
	}
	return a
}
