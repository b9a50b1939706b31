package contact

import (
	"fmt"
	"strings"
)

// Record is the full profile of one contact. The name never changes after
// construction.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone appends number to the phone list. Duplicates are allowed.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the first phone equal to number.
func (r *Record) FindPhone(number string) (Phone, bool) {
	if i := r.phoneIndex(number); i >= 0 {
		return r.phones[i], true
	}
	return Phone{}, false
}

func (r *Record) RemovePhone(number string) error {
	i := r.phoneIndex(number)
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first phone equal to old with updated, keeping its
// position. The record is left untouched when updated is not a valid phone.
func (r *Record) EditPhone(old, updated string) error {
	i := r.phoneIndex(old)
	if i < 0 {
		return ErrPhoneNotFound
	}
	p, err := NewPhone(updated)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

func (r *Record) AddBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	birthday := "not set"
	if b, ok := r.Birthday(); ok {
		birthday = b.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.name, strings.Join(phones, ": "), birthday)
}

func (r *Record) phoneIndex(number string) int {
	for i, p := range r.phones {
		if p.value == number {
			return i
		}
	}
	return -1
}
