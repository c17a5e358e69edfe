package humanwire

import (
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Decoded is a decode-only wrapper: it holds a value that is known to have
// come out of a successful decode, because the only way to produce a
// non-zero Decoded is through a framework unmarshal entry point. It has no
// public constructor and no marshal support.
//
// The payload may be a plain native value or an Option of one. For optional
// payloads a null scalar decodes to None, and a field the framework never
// touches keeps the zero value, which is also None.
//
//	type Patch struct {
//	    Timeout humanwire.Decoded[humanwire.Option[time.Duration]] `json:"timeout"`
//	}
type Decoded[T Payload] struct {
	value T
}

// Value returns the decoded payload.
func (d Decoded[T]) Value() T {
	return d.value
}

// Unwrap returns the decoded payload and resets the wrapper to its zero
// value.
func (d *Decoded[T]) Unwrap() T {
	v := d.value
	*d = Decoded[T]{}
	return v
}

func (d *Decoded[T]) UnmarshalText(text []byte) error {
	s := string(text)
	v, err := decodePayload[T](&s)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

func (d *Decoded[T]) UnmarshalJSON(data []byte) error {
	raw, err := jsonScalar(data, expectFor[T]())
	if err != nil {
		return err
	}
	v, err := decodePayload[T](raw)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

func (d *Decoded[T]) UnmarshalYAML(node *yaml.Node) error {
	raw, err := yamlScalar(node, expectFor[T]())
	if err != nil {
		return err
	}
	v, err := decodePayload[T](raw)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

func (d *Decoded[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := msgpackScalar(dec, expectFor[T]())
	if err != nil {
		return err
	}
	v, err := decodePayload[T](raw)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}

func (d *Decoded[T]) UnmarshalCBOR(data []byte) error {
	raw, err := cborScalar(data, expectFor[T]())
	if err != nil {
		return err
	}
	v, err := decodePayload[T](raw)
	if err != nil {
		return err
	}
	d.value = v
	return nil
}
