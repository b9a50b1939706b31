package export

import (
	"fmt"
	"io"

	"github.com/emersion/go-vcard"

	"contactbook/contact"
)

const (
	vcardVersion     = "4.0"
	vcardBirthLayout = "20060102"
)

// VCard writes one vCard 4.0 per record, in the given order.
func VCard(w io.Writer, records []*contact.Record) error {
	enc := vcard.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(toCard(r)); err != nil {
			return fmt.Errorf("export: encode vcard %q: %w", r.Name(), err)
		}
	}
	return nil
}

func toCard(r *contact.Record) vcard.Card {
	name := r.Name().String()
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, vcardVersion)
	card.SetValue(vcard.FieldUID, "urn:uuid:"+uidFor(name))
	card.SetValue(vcard.FieldFormattedName, name)
	for _, p := range r.Phones() {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  p.String(),
			Params: vcard.Params{vcard.ParamType: {vcard.TypeCell}},
		})
	}
	if b, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, b.Date().Format(vcardBirthLayout))
	}
	return card
}
