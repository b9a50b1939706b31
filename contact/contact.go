package contact

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"contactbook/errs"
)

// DateLayout is the only accepted textual form of a birthday.
const DateLayout = "2006-01-02"

var (
	ErrInvalidName     = errs.Errorf(errs.EINVALID, "Contact name must not be empty.")
	ErrInvalidPhone    = errs.Errorf(errs.EINVALID, "Phone number must be exactly 10 digits.")
	ErrInvalidBirthday = errs.Errorf(errs.EINVALID, "Birthday must be in YYYY-MM-DD format.")
	ErrPhoneNotFound   = errs.Errorf(errs.ENOTFOUND, "Phone not found.")
	ErrContactNotFound = errs.Errorf(errs.ENOTFOUND, "Contact not found.")
	ErrBirthdayNotSet  = errs.Errorf(errs.ENOTFOUND, "Birthday not set.")
)

var (
	datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
	validate    = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("isodate", validateDate)
	return v
}

// validateDate accepts only YYYY-MM-DD strings naming a real calendar day.
func validateDate(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	value := fl.Field().String()
	if !datePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// Name identifies a contact and is its key in the AddressBook.
type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a ten digit phone number.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	if err := validate.Var(raw, "required,len=10,number"); err != nil {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date stored at UTC midnight.
type Birthday struct {
	date time.Time
}

func NewBirthday(raw string) (Birthday, error) {
	if err := validate.Var(raw, "required,isodate"); err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday as a UTC midnight time.
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(DateLayout)
}
