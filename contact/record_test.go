package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/contact"
)

func newRecord(t *testing.T, name string, phones ...string) *contact.Record {
	t.Helper()
	r, err := contact.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func phoneStrings(r *contact.Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestNewRecord(t *testing.T) {
	t.Run("should start with no phones and no birthday", func(t *testing.T) {
		r := newRecord(t, "John")

		assert.Equal(t, "John", r.Name().String())
		assert.Empty(t, r.Phones())
		_, ok := r.Birthday()
		assert.False(t, ok)
	})

	t.Run("should fail on empty name", func(t *testing.T) {
		r, err := contact.NewRecord("")

		assert.Nil(t, r)
		assert.Equal(t, contact.ErrInvalidName, err)
	})
}

func TestRecord_AddPhone(t *testing.T) {
	t.Run("should append phones and keep duplicates", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890", "1234567890")

		assert.Equal(t, []string{"1234567890", "1234567890"}, phoneStrings(r))
	})

	t.Run("should reject invalid phone", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890")

		err := r.AddPhone("12345")

		assert.Equal(t, contact.ErrInvalidPhone, err)
		assert.Equal(t, []string{"1234567890"}, phoneStrings(r))
	})

	t.Run("should not expose internal slice", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890")

		phones := r.Phones()
		phones[0] = contact.Phone{}

		assert.Equal(t, []string{"1234567890"}, phoneStrings(r))
	})
}

func TestRecord_FindPhone(t *testing.T) {
	r := newRecord(t, "John", "1111111111", "2222222222")

	t.Run("should find existing phone", func(t *testing.T) {
		p, ok := r.FindPhone("2222222222")

		assert.True(t, ok)
		assert.Equal(t, "2222222222", p.String())
	})

	t.Run("should report absent phone", func(t *testing.T) {
		_, ok := r.FindPhone("9999999999")

		assert.False(t, ok)
	})
}

func TestRecord_RemovePhone(t *testing.T) {
	t.Run("should remove only the first match", func(t *testing.T) {
		r := newRecord(t, "John", "1111111111", "2222222222", "1111111111")

		err := r.RemovePhone("1111111111")

		require.NoError(t, err)
		assert.Equal(t, []string{"2222222222", "1111111111"}, phoneStrings(r))
	})

	t.Run("should fail on unknown phone and keep the list", func(t *testing.T) {
		r := newRecord(t, "John", "1111111111")

		err := r.RemovePhone("9999999999")

		assert.Equal(t, contact.ErrPhoneNotFound, err)
		assert.Equal(t, []string{"1111111111"}, phoneStrings(r))
	})
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("should replace phone in place", func(t *testing.T) {
		r := newRecord(t, "John", "0000000000", "1111111111", "3333333333")

		err := r.EditPhone("1111111111", "2222222222")

		require.NoError(t, err)
		_, ok := r.FindPhone("1111111111")
		assert.False(t, ok)
		_, ok = r.FindPhone("2222222222")
		assert.True(t, ok)
		assert.Equal(t, []string{"0000000000", "2222222222", "3333333333"}, phoneStrings(r))
	})

	t.Run("should fail on unknown old phone", func(t *testing.T) {
		r := newRecord(t, "John", "1111111111")

		err := r.EditPhone("9999999999", "2222222222")

		assert.Equal(t, contact.ErrPhoneNotFound, err)
		assert.Equal(t, []string{"1111111111"}, phoneStrings(r))
	})

	t.Run("should leave record unchanged on invalid new phone", func(t *testing.T) {
		r := newRecord(t, "John", "1111111111")

		err := r.EditPhone("1111111111", "abc")

		assert.Equal(t, contact.ErrInvalidPhone, err)
		assert.Equal(t, []string{"1111111111"}, phoneStrings(r))
	})
}

func TestRecord_AddBirthday(t *testing.T) {
	t.Run("should set and overwrite birthday", func(t *testing.T) {
		r := newRecord(t, "John")

		require.NoError(t, r.AddBirthday("1990-01-13"))
		require.NoError(t, r.AddBirthday("1991-02-14"))

		b, ok := r.Birthday()
		assert.True(t, ok)
		assert.Equal(t, "1991-02-14", b.String())
	})

	t.Run("should keep previous birthday on invalid date", func(t *testing.T) {
		r := newRecord(t, "John")
		require.NoError(t, r.AddBirthday("1990-01-13"))

		err := r.AddBirthday("1990-02-30")

		assert.Equal(t, contact.ErrInvalidBirthday, err)
		b, _ := r.Birthday()
		assert.Equal(t, "1990-01-13", b.String())
	})
}

func TestRecord_String(t *testing.T) {
	t.Run("should render phones and unset birthday", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890", "5555555555")

		assert.Equal(t, "Contact name: John, phones: 1234567890: 5555555555, birthday: not set", r.String())
	})

	t.Run("should render birthday", func(t *testing.T) {
		r := newRecord(t, "Jane", "1234567890")
		require.NoError(t, r.AddBirthday("1990-01-13"))

		assert.Equal(t, "Contact name: Jane, phones: 1234567890, birthday: 1990-01-13", r.String())
	})

	t.Run("should render empty phone list", func(t *testing.T) {
		r := newRecord(t, "Solo")

		assert.Equal(t, "Contact name: Solo, phones: , birthday: not set", r.String())
	})
}
