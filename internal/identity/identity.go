// Package identity encodes and decodes the payload embedded in a product's
// scannable code. The wire format is canonical JSON with exactly the keys
// id, sku, name and type, where type is always the literal "inventory-item".
package identity

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// PayloadType is the literal tag every valid payload must carry.
const PayloadType = "inventory-item"

var (
	ErrInvalidFormat = errors.New("identity: payload is not a valid inventory code")
	ErrWrongType     = errors.New("identity: payload type is not inventory-item")
)

// Payload is the identifying data embedded in a product code.
type Payload struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Encode serializes the payload deterministically. The Type field is forced
// to the inventory-item tag so callers only supply id, sku and name.
func Encode(p Payload) (string, error) {
	p.Type = PayloadType
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a scanned payload string. It fails with ErrInvalidFormat when
// the text is not the expected structure (including unknown keys or trailing
// garbage), and with ErrWrongType when the type tag is missing or not
// "inventory-item".
func Decode(raw string) (Payload, error) {
	var p Payload

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Payload{}, ErrInvalidFormat
	}
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return Payload{}, ErrInvalidFormat
	}

	if p.Type != PayloadType {
		return Payload{}, ErrWrongType
	}
	return p, nil
}
