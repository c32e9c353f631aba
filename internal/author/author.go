package author

import (
	"bookshelf/internal/record"
)

// Author represents a book author.
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// Input carries a partial author update. Nil fields are left untouched.
type Input struct {
	ID   *int `validate:"required"`
	Name *string
}

// New creates an author from in.
func New(in Input) (*Author, error) {
	a := &Author{}
	if err := a.Update(in); err != nil {
		return nil, err
	}
	return a, nil
}

// Update merges in onto a. ID is always taken from in.
func (a *Author) Update(in Input) error {
	if err := record.Validate(in); err != nil {
		return err
	}
	a.ID = *in.ID
	if in.Name != nil {
		a.Name = *in.Name
	}
	return nil
}
