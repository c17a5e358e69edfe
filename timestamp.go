package humanwire

import (
	"encoding"
	"encoding/json"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Timestamp wraps a time.Time with an RFC3339 wire form. Input is accepted
// in weak mode: the date-time separator may be a space and the offset may
// be omitted, in which case UTC is assumed. Output is always strict RFC3339
// UTC with a trailing 'Z':
//
//	{"at": "2018-05-11 18:28:30"}  decodes to 2018-05-11T18:28:30Z
//	                               re-encodes as {"at":"2018-05-11T18:28:30Z"}
type Timestamp struct {
	time.Time
}

var (
	_ json.Marshaler           = Timestamp{}
	_ json.Unmarshaler         = (*Timestamp)(nil)
	_ encoding.TextMarshaler   = Timestamp{}
	_ encoding.TextUnmarshaler = (*Timestamp)(nil)
	_ yaml.Marshaler           = Timestamp{}
	_ msgpack.CustomEncoder    = Timestamp{}
	_ msgpack.CustomDecoder    = (*Timestamp)(nil)
	_ cbor.Marshaler           = Timestamp{}
	_ cbor.Unmarshaler         = (*Timestamp)(nil)
)

// String returns the canonical wire form.
func (t Timestamp) String() string {
	return timestampCodec.format(t.Time)
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(timestampCodec.format(t.Time)), nil
}

func (t *Timestamp) UnmarshalText(text []byte) error {
	v, err := timestampCodec.decode(string(text))
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	s := timestampCodec.format(t.Time)
	return jsonWrite(&s)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw, err := jsonScalar(data, expectTimestamp)
	if err != nil {
		return err
	}
	v, err := decodeScalar[time.Time](raw)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}

func (t Timestamp) MarshalYAML() (any, error) {
	return timestampCodec.format(t.Time), nil
}

func (t *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	raw, err := yamlScalar(node, expectTimestamp)
	if err != nil {
		return err
	}
	v, err := decodeScalar[time.Time](raw)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}

func (t Timestamp) EncodeMsgpack(enc *msgpack.Encoder) error {
	s := timestampCodec.format(t.Time)
	return msgpackWrite(enc, &s)
}

func (t *Timestamp) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := msgpackScalar(dec, expectTimestamp)
	if err != nil {
		return err
	}
	v, err := decodeScalar[time.Time](raw)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}

func (t Timestamp) MarshalCBOR() ([]byte, error) {
	s := timestampCodec.format(t.Time)
	return cborWrite(&s)
}

func (t *Timestamp) UnmarshalCBOR(data []byte) error {
	raw, err := cborScalar(data, expectTimestamp)
	if err != nil {
		return err
	}
	v, err := decodeScalar[time.Time](raw)
	if err != nil {
		return err
	}
	t.Time = v
	return nil
}
