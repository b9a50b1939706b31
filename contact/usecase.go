package contact

import (
	"context"
	"errors"
)

type Service interface {
	AddContact(ctx context.Context, name, phone string) (bool, error)
	ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error
	RemovePhone(ctx context.Context, name, phone string) error
	Phones(ctx context.Context, name string) ([]Phone, error)
	AddBirthday(ctx context.Context, name, date string) error
	Birthday(ctx context.Context, name string) (Birthday, error)
	DeleteContact(ctx context.Context, name string) error
	ListContacts(ctx context.Context) ([]*Record, error)
	UpcomingBirthdays(ctx context.Context) ([]UpcomingBirthday, error)
}

type Repository interface {
	FindRecord(ctx context.Context, name string) (*Record, error)
	SaveRecord(ctx context.Context, r *Record) error
	DeleteRecord(ctx context.Context, name string) error
	AllRecords(ctx context.Context) ([]*Record, error)
}

type Usecase struct {
	r     Repository
	clock Clock
}

func NewUsecase(r Repository, c Clock) *Usecase {
	return &Usecase{
		r:     r,
		clock: c,
	}
}

// AddContact appends phone to the named contact, creating the contact first
// when it does not exist. It reports whether a new contact was created.
func (uc *Usecase) AddContact(ctx context.Context, name, phone string) (bool, error) {
	created := false
	rec, err := uc.r.FindRecord(ctx, name)
	if errors.Is(err, ErrContactNotFound) {
		if rec, err = NewRecord(name); err != nil {
			return false, err
		}
		created = true
	} else if err != nil {
		return false, err
	}

	if err := rec.AddPhone(phone); err != nil {
		return false, err
	}
	return created, uc.r.SaveRecord(ctx, rec)
}

func (uc *Usecase) ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	rec, err := uc.r.FindRecord(ctx, name)
	if err != nil {
		return err
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return err
	}
	return uc.r.SaveRecord(ctx, rec)
}

func (uc *Usecase) RemovePhone(ctx context.Context, name, phone string) error {
	rec, err := uc.r.FindRecord(ctx, name)
	if err != nil {
		return err
	}
	if err := rec.RemovePhone(phone); err != nil {
		return err
	}
	return uc.r.SaveRecord(ctx, rec)
}

func (uc *Usecase) Phones(ctx context.Context, name string) ([]Phone, error) {
	rec, err := uc.r.FindRecord(ctx, name)
	if err != nil {
		return nil, err
	}
	return rec.Phones(), nil
}

func (uc *Usecase) AddBirthday(ctx context.Context, name, date string) error {
	rec, err := uc.r.FindRecord(ctx, name)
	if err != nil {
		return err
	}
	if err := rec.AddBirthday(date); err != nil {
		return err
	}
	return uc.r.SaveRecord(ctx, rec)
}

func (uc *Usecase) Birthday(ctx context.Context, name string) (Birthday, error) {
	rec, err := uc.r.FindRecord(ctx, name)
	if err != nil {
		return Birthday{}, err
	}
	b, ok := rec.Birthday()
	if !ok {
		return Birthday{}, ErrBirthdayNotSet
	}
	return b, nil
}

func (uc *Usecase) DeleteContact(ctx context.Context, name string) error {
	return uc.r.DeleteRecord(ctx, name)
}

func (uc *Usecase) ListContacts(ctx context.Context) ([]*Record, error) {
	return uc.r.AllRecords(ctx)
}

func (uc *Usecase) UpcomingBirthdays(ctx context.Context) ([]UpcomingBirthday, error) {
	records, err := uc.r.AllRecords(ctx)
	if err != nil {
		return nil, err
	}
	return upcomingBirthdays(records, uc.clock.Now()), nil
}
