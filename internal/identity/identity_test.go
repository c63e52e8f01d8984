package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := Payload{
		ID:   "f6c1a6d2-9d3e-4a6b-9e51-2f0c8a7b1c9d",
		SKU:  "WH-1042",
		Name: "Pallet Jack",
	}

	raw, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.SKU, out.SKU)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, PayloadType, out.Type)
}

func TestEncodeIsDeterministic(t *testing.T) {
	p := Payload{ID: "1", SKU: "A", Name: "Box"}

	first, err := Encode(p)
	require.NoError(t, err)
	second, err := Encode(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeForcesTypeTag(t *testing.T) {
	raw, err := Encode(Payload{ID: "1", SKU: "A", Name: "Box", Type: "something-else"})
	require.NoError(t, err)

	out, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, PayloadType, out.Type)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not json at all",
		`{"id": "1"`,
		`[1,2,3]`,
		`{"id":"1","sku":"A","name":"Box","type":"inventory-item"} extra`,
		`{"id":"1","sku":"A","name":"Box","type":"inventory-item","qty":4}`,
	}

	for _, raw := range cases {
		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input: %q", raw)
	}
}

func TestDecodeRejectsWrongOrMissingType(t *testing.T) {
	cases := []string{
		`{"id":"1","sku":"A","name":"Box"}`,
		`{"id":"1","sku":"A","name":"Box","type":""}`,
		`{"id":"1","sku":"A","name":"Box","type":"shipping-label"}`,
	}

	for _, raw := range cases {
		_, err := Decode(raw)
		assert.ErrorIs(t, err, ErrWrongType, "input: %q", raw)
	}
}
