package humanwire

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

func TestDecoded_Duration(t *testing.T) {
	var d Decoded[time.Duration]
	if err := json.Unmarshal([]byte(`"15 seconds"`), &d); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if d.Value() != 15*time.Second {
		t.Errorf("Value = %v, want 15s", d.Value())
	}
}

func TestDecoded_Timestamp(t *testing.T) {
	var d Decoded[time.Time]
	if err := json.Unmarshal([]byte(`"2018-05-11 18:28:30"`), &d); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !d.Value().Equal(time.Unix(1526063310, 0)) {
		t.Errorf("Value = %v", d.Value())
	}
}

func TestDecoded_NullOnPlainPayload(t *testing.T) {
	var d Decoded[time.Duration]
	if err := json.Unmarshal([]byte(`null`), &d); !errors.Is(err, ErrNotString) {
		t.Errorf("null on a non-optional payload: got %v, want ErrNotString", err)
	}
}

func TestDecoded_OptionalPresent(t *testing.T) {
	var d Decoded[Option[time.Duration]]
	if err := json.Unmarshal([]byte(`"2h30m"`), &d); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	v, ok := d.Value().Get()
	if !ok || v != 2*time.Hour+30*time.Minute {
		t.Errorf("Value = (%v, %v), want Some(2h30m)", v, ok)
	}
}

func TestDecoded_OptionalNull(t *testing.T) {
	var d Decoded[Option[time.Duration]]
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !d.Value().IsNone() {
		t.Error("null should decode to None")
	}
}

func TestDecoded_OptionalMissingField(t *testing.T) {
	var host struct {
		Timeout Decoded[Option[time.Duration]] `json:"timeout"`
	}
	if err := json.Unmarshal([]byte(`{}`), &host); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	// An untouched field keeps the zero value, and the zero Option is None.
	if !host.Timeout.Value().IsNone() {
		t.Error("missing field should come out as None")
	}
}

func TestDecoded_OptionalInvalidPresent(t *testing.T) {
	var d Decoded[Option[time.Duration]]
	err := json.Unmarshal([]byte(`"not a duration"`), &d)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("got %v, want ErrInvalidValue", err)
	}
	// Same logic as decoding the plain payload: the error carries the text.
	var verr *ValueError
	if !errors.As(err, &verr) || verr.Value != "not a duration" {
		t.Errorf("error %v should carry the offending text", err)
	}
}

func TestDecoded_Unwrap(t *testing.T) {
	var d Decoded[time.Duration]
	if err := d.UnmarshalText([]byte("15s")); err != nil {
		t.Fatal(err)
	}

	if got := d.Unwrap(); got != 15*time.Second {
		t.Errorf("Unwrap = %v, want 15s", got)
	}
	if d.Value() != 0 {
		t.Error("Unwrap should reset the wrapper")
	}
}

func TestDecoded_YAML(t *testing.T) {
	var host struct {
		Deadline Decoded[Option[time.Time]] `yaml:"deadline"`
	}
	if err := yaml.Unmarshal([]byte("deadline: 2018-05-11 18:28:30\n"), &host); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	v, ok := host.Deadline.Value().Get()
	if !ok || !v.Equal(time.Unix(1526063310, 0)) {
		t.Errorf("Value = (%v, %v)", v, ok)
	}

	if err := yaml.Unmarshal([]byte("deadline: null\n"), &host); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !host.Deadline.Value().IsNone() {
		t.Error("explicit yaml null should decode to None")
	}
}

func TestDecoded_Msgpack(t *testing.T) {
	data, err := msgpack.Marshal(map[string]any{"timeout": "15 seconds"})
	if err != nil {
		t.Fatal(err)
	}

	var host struct {
		Timeout Decoded[Option[time.Duration]] `msgpack:"timeout"`
	}
	if err := msgpack.Unmarshal(data, &host); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	v, ok := host.Timeout.Value().Get()
	if !ok || v != 15*time.Second {
		t.Errorf("Value = (%v, %v), want Some(15s)", v, ok)
	}

	data, err = msgpack.Marshal(map[string]any{"timeout": nil})
	if err != nil {
		t.Fatal(err)
	}
	host.Timeout = Decoded[Option[time.Duration]]{}
	if err := msgpack.Unmarshal(data, &host); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !host.Timeout.Value().IsNone() {
		t.Error("msgpack nil should decode to None")
	}
}

func TestDecoded_CBOR(t *testing.T) {
	data, err := cbor.Marshal(map[string]any{"timeout": "1m 30s"})
	if err != nil {
		t.Fatal(err)
	}

	var host struct {
		Timeout Decoded[time.Duration] `cbor:"timeout"`
	}
	if err := cbor.Unmarshal(data, &host); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if host.Timeout.Value() != 90*time.Second {
		t.Errorf("Value = %v, want 1m30s", host.Timeout.Value())
	}
}
