package keeper

import (
	"encoding/json"

	collcodec "cosmossdk.io/collections/codec"
)

type jsonValue[T any] struct {
	name string
}

// JSONValue is a collections value codec storing T as canonical encoding/json output.
func JSONValue[T any](name string) collcodec.ValueCodec[T] {
	return jsonValue[T]{name: name}
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var value T
	err := json.Unmarshal(b, &value)
	return value, err
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	bz, err := c.Encode(value)
	if err != nil {
		return err.Error()
	}
	return string(bz)
}

func (c jsonValue[T]) ValueType() string {
	return "json/" + c.name
}
