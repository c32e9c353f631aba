package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"bookshelf/internal/book"
)

type bookLister interface {
	Books() []*book.Book
}

// tableView prints the shelf as a table whose columns follow book.Fields.
type tableView struct {
	out   io.Writer
	books bookLister
}

func newTableView(out io.Writer, books bookLister) *tableView {
	return &tableView{out: out, books: books}
}

// Changed re-renders the table after the shelf changes.
func (v *tableView) Changed() error {
	return v.Render()
}

func (v *tableView) Render() error {
	fields := book.Fields()
	tw := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = strings.ToUpper(f)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, b := range v.books.Books() {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i], _ = b.Field(f)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render shelf: %w", err)
	}
	_, err := fmt.Fprintln(v.out)
	return err
}
