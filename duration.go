package humanwire

import (
	"encoding"
	"encoding/json"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Duration wraps a time.Duration with a human-readable wire form. Declare a
// struct field as Duration (instead of time.Duration) and every supported
// framework will read free-form duration strings and write the canonical
// form:
//
//	type Job struct {
//	    Timeout humanwire.Duration `json:"timeout"`
//	}
//
//	{"timeout": "2 minutes 30 seconds"}  decodes to 2m30s
//	                                     re-encodes as {"timeout":"2m 30s"}
type Duration struct {
	time.Duration
}

var (
	_ json.Marshaler           = Duration{}
	_ json.Unmarshaler         = (*Duration)(nil)
	_ encoding.TextMarshaler   = Duration{}
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ yaml.Marshaler           = Duration{}
	_ msgpack.CustomEncoder    = Duration{}
	_ msgpack.CustomDecoder    = (*Duration)(nil)
	_ cbor.Marshaler           = Duration{}
	_ cbor.Unmarshaler         = (*Duration)(nil)
)

// String returns the canonical wire form.
func (d Duration) String() string {
	return durationCodec.format(d.Duration)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(durationCodec.format(d.Duration)), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := durationCodec.decode(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	s := durationCodec.format(d.Duration)
	return jsonWrite(&s)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	raw, err := jsonScalar(data, expectDuration)
	if err != nil {
		return err
	}
	v, err := decodeScalar[time.Duration](raw)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return durationCodec.format(d.Duration), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	raw, err := yamlScalar(node, expectDuration)
	if err != nil {
		return err
	}
	v, err := decodeScalar[time.Duration](raw)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) EncodeMsgpack(enc *msgpack.Encoder) error {
	s := durationCodec.format(d.Duration)
	return msgpackWrite(enc, &s)
}

func (d *Duration) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := msgpackScalar(dec, expectDuration)
	if err != nil {
		return err
	}
	v, err := decodeScalar[time.Duration](raw)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalCBOR() ([]byte, error) {
	s := durationCodec.format(d.Duration)
	return cborWrite(&s)
}

func (d *Duration) UnmarshalCBOR(data []byte) error {
	raw, err := cborScalar(data, expectDuration)
	if err != nil {
		return err
	}
	v, err := decodeScalar[time.Duration](raw)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}
