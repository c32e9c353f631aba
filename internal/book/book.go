package book

import (
	"strconv"

	"bookshelf/internal/author"
	"bookshelf/internal/record"
)

var fields = []string{"id", "title", "isbn", "author"}

// Book represents a book entity.
type Book struct {
	ID     int            `json:"id"`
	Title  string         `json:"title,omitempty"`
	ISBN   string         `json:"isbn,omitempty"`
	Author *author.Author `json:"author,omitempty"`
}

// Input carries a partial book update. Nil fields are left untouched; a
// non-nil empty string is applied.
type Input struct {
	ID     *int `validate:"required"`
	Title  *string
	ISBN   *string
	Author *author.Author
}

// Fields returns the book field names in display order.
func Fields() []string {
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// New creates a book from in.
func New(in Input) (*Book, error) {
	b := &Book{}
	if err := b.Update(in); err != nil {
		return nil, err
	}
	return b, nil
}

// Update merges in onto b. ID is always taken from in.
func (b *Book) Update(in Input) error {
	if err := record.Validate(in); err != nil {
		return err
	}
	b.ID = *in.ID
	if in.Title != nil {
		b.Title = *in.Title
	}
	if in.ISBN != nil {
		b.ISBN = *in.ISBN
	}
	if in.Author != nil {
		b.Author = in.Author
	}
	return nil
}

// Field returns the text value of one of Fields.
func (b *Book) Field(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.Itoa(b.ID), true
	case "title":
		return b.Title, true
	case "isbn":
		return b.ISBN, true
	case "author":
		if b.Author == nil {
			return "", true
		}
		return b.Author.Name, true
	default:
		return "", false
	}
}
