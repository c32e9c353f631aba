package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bookshelf/internal/book"
	"bookshelf/internal/collection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestSeedBooks(t *testing.T) {
	books, err := seedBooks()
	require.NoError(t, err)
	require.Len(t, books, len(seed))

	assert.Equal(t, "A Wizard of Earthsea", books[0].Title)
	assert.Same(t, leGuin, books[0].Author)
	assert.Empty(t, books[1].ISBN)
}

func TestTableView_Render(t *testing.T) {
	shelf := collection.New([]*book.Book{
		{ID: 1, Title: "Solaris", ISBN: "9780156027601", Author: lem},
	}, zap.NewNop())
	var buf bytes.Buffer

	require.NoError(t, newTableView(&buf, shelf).Render())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"ID", "TITLE", "ISBN", "AUTHOR"}, strings.Fields(lines[0]))
	assert.Contains(t, lines[1], "Solaris")
	assert.Contains(t, lines[1], "9780156027601")
	assert.Contains(t, lines[1], "Stanisław Lem")
}

func TestTableView_RenderError(t *testing.T) {
	shelf := collection.New(nil, zap.NewNop())

	err := newTableView(failingWriter{}, shelf).Render()
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	books, err := seedBooks()
	require.NoError(t, err)
	core, logs := observer.New(zapcore.InfoLevel)
	shelf := collection.New(books, zap.New(core))
	var buf bytes.Buffer
	shelf.Subscribe(newTableView(&buf, shelf))

	run(shelf, zap.New(core))

	assert.Equal(t, len(seed)+1, shelf.Len())
	updated, ok := shelf.Get(2)
	require.True(t, ok)
	assert.Equal(t, "9780441478125", updated.ISBN)
	assert.Equal(t, "The Left Hand of Darkness", updated.Title)

	assert.Equal(t, 2, strings.Count(buf.String(), "AUTHOR"))
	assert.Equal(t, 1, logs.FilterMessage("Book added").Len())
	assert.Equal(t, 1, logs.FilterMessage("Book not on shelf").Len())
	assert.Zero(t, logs.FilterMessage("Failed to update book").Len())
}

func TestUpdateBook(t *testing.T) {
	tests := []struct {
		name    string
		in      book.Input
		message string
		level   zapcore.Level
	}{
		{
			name:    "missing book",
			in:      book.Input{ID: ptr(99), Title: ptr("Unwritten")},
			message: "Book not on shelf",
			level:   zapcore.WarnLevel,
		},
		{
			name:    "invalid input",
			in:      book.Input{Title: ptr("No id")},
			message: "Failed to update book",
			level:   zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			shelf := collection.New([]*book.Book{{ID: 1, Title: "Solaris"}}, zap.NewNop())

			updateBook(shelf, tt.in, zap.New(core))

			entries := logs.FilterMessage(tt.message).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
		})
	}

	t.Run("success logs nothing", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		shelf := collection.New([]*book.Book{{ID: 1, Title: "Solaris"}}, zap.NewNop())

		updateBook(shelf, book.Input{ID: ptr(1), ISBN: ptr("9780156027601")}, zap.New(core))

		assert.Zero(t, logs.Len())
		b, _ := shelf.Get(1)
		assert.Equal(t, "9780156027601", b.ISBN)
	})
}
