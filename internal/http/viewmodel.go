package httpx

import (
	"reflect"

	"github.com/L-P/mme/internal/rom"
)

// HeaderField is one decoded location header value as shown in detail pages.
type HeaderField struct {
	Name  string
	Value any
	Width int // hex digits for integer values
}

// headerFields lists the non-zero fields of a location header in declaration
// order.
func headerFields(h rom.LocationHeader) []HeaderField {
	v := reflect.ValueOf(h)
	t := v.Type()

	fields := make([]HeaderField, 0, t.NumField())
	for i := range t.NumField() {
		f := v.Field(i)
		if f.IsZero() {
			continue
		}
		fields = append(fields, HeaderField{
			Name:  t.Field(i).Name,
			Value: f.Interface(),
			Width: int(t.Field(i).Type.Size()) * 2,
		})
	}
	return fields
}

// messageByID returns the first message with the given ID.
func messageByID(msgs []rom.Message, id uint16) (rom.Message, bool) {
	for _, m := range msgs {
		if m.ID == id {
			return m, true
		}
	}
	return rom.Message{}, false
}
