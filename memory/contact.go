package memory

import (
	"context"

	"contactbook/contact"
)

// ContactRepository implements contact.Repository on top of an AddressBook
// that lives for the whole process.
type ContactRepository struct {
	book *contact.AddressBook
}

func NewContactRepository(book *contact.AddressBook) *ContactRepository {
	return &ContactRepository{book: book}
}

func (r *ContactRepository) FindRecord(ctx context.Context, name string) (*contact.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.book.Find(name)
	if !ok {
		return nil, contact.ErrContactNotFound
	}
	return rec, nil
}

// SaveRecord stores rec under its name. Records found through FindRecord are
// already shared with the book, so saving them again is an overwrite in place.
func (r *ContactRepository) SaveRecord(ctx context.Context, rec *contact.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.book.AddRecord(rec)
	return nil
}

func (r *ContactRepository) DeleteRecord(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.book.Delete(name)
	return nil
}

func (r *ContactRepository) AllRecords(ctx context.Context) ([]*contact.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.book.Records(), nil
}
