package humanwire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
	"gopkg.in/yaml.v3"
)

// Scalar-read and scalar-write primitives, one pair per framework. Each
// read primitive reduces the framework's representation to a nullable
// string (nil means the null scalar); everything else is a type error.

var jsonNull = []byte("null")

func jsonScalar(data []byte, expect string) (*string, error) {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, newTypeError(expect, string(data))
	}
	return &s, nil
}

func jsonWrite(raw *string) ([]byte, error) {
	if raw == nil {
		return jsonNull, nil
	}
	return json.Marshal(*raw)
}

func yamlScalar(node *yaml.Node, expect string) (*string, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, newTypeError(expect, node.Value)
	}
	switch node.Tag {
	case "!!null":
		return nil, nil
	case "!!str", "!!timestamp":
		// The resolver tags unquoted RFC3339-looking scalars as
		// !!timestamp; the raw text is still in Value.
		s := node.Value
		return &s, nil
	default:
		return nil, newTypeError(expect, node.Value)
	}
}

func yamlWrite(raw *string) (any, error) {
	if raw == nil {
		return nil, nil
	}
	return *raw, nil
}

func msgpackScalar(dec *msgpack.Decoder, expect string) (*string, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if !msgpcode.IsString(code) {
		// Consume the value so the stream stays aligned for the caller.
		if _, err := dec.DecodeInterface(); err != nil {
			return nil, err
		}
		return nil, newTypeError(expect, fmt.Sprintf("msgpack code 0x%02x", code))
	}
	s, err := dec.DecodeString()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func msgpackWrite(enc *msgpack.Encoder, raw *string) error {
	if raw == nil {
		return enc.EncodeNil()
	}
	return enc.EncodeString(*raw)
}

// CBOR simple values null and undefined.
var cborNull = []byte{0xf6}

func cborScalar(data []byte, expect string) (*string, error) {
	if len(data) == 1 && (data[0] == 0xf6 || data[0] == 0xf7) {
		return nil, nil
	}
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, newTypeError(expect, fmt.Sprintf("0x%x", data))
	}
	return &s, nil
}

func cborWrite(raw *string) ([]byte, error) {
	if raw == nil {
		return cborNull, nil
	}
	return cbor.Marshal(*raw)
}
