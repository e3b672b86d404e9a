package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue returns a collections value codec storing V as JSON. Records in
// this module are plain Go structs, so both the binary and JSON encodings are
// the same canonical JSON document.
func JSONValue[V any](valueType string) collcodec.ValueCodec[V] {
	return jsonValueCodec[V]{valueType: valueType}
}

type jsonValueCodec[V any] struct {
	valueType string
}

func (c jsonValueCodec[V]) Encode(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[V]) Decode(b []byte) (V, error) {
	var v V
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %w", collcodec.ErrEncoding, c.valueType, err)
	}
	return v, nil
}

func (c jsonValueCodec[V]) EncodeJSON(value V) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValueCodec[V]) DecodeJSON(b []byte) (V, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[V]) Stringify(value V) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValueCodec[V]) ValueType() string {
	return c.valueType
}

var (
	// CertificateValue encodes Certificate records.
	CertificateValue = JSONValue[Certificate]("framedcoin/Certificate")

	// ParamsValue encodes Params.
	ParamsValue = JSONValue[Params]("framedcoin/Params")
)
