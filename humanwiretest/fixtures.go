// Package humanwiretest provides shared fixtures for exercising the codec
// through real host structures in every supported framework.
package humanwiretest

import (
	"encoding/json"
	"time"

	"github.com/humanwire/humanwire"
)

// Job is a host type using the bidirectional wrapper types.
type Job struct {
	Name      string              `json:"name" yaml:"name" msgpack:"name" cbor:"name"`
	Timeout   humanwire.Duration  `json:"timeout" yaml:"timeout" msgpack:"timeout" cbor:"timeout"`
	StartedAt humanwire.Timestamp `json:"started_at" yaml:"started_at" msgpack:"started_at" cbor:"started_at"`
}

// Patch is a host type using decode-only optional fields: untouched fields
// and explicit nulls both come out as None.
type Patch struct {
	Timeout  humanwire.Decoded[humanwire.Option[time.Duration]] `json:"timeout" yaml:"timeout" msgpack:"timeout" cbor:"timeout"`
	Deadline humanwire.Decoded[humanwire.Option[time.Time]]     `json:"deadline" yaml:"deadline" msgpack:"deadline" cbor:"deadline"`
}

// Lease is a host type integrating through the functional hooks from its
// own marshal methods, with no wrapper types involved.
type Lease struct {
	TTL       time.Duration
	ExpiresAt time.Time
}

type leaseWire struct {
	TTL       string  `json:"ttl"`
	ExpiresAt *string `json:"expires_at"`
}

func (l Lease) MarshalJSON() ([]byte, error) {
	var expires *string
	if !l.ExpiresAt.IsZero() {
		expires = humanwire.FormatNullable(humanwire.Some(l.ExpiresAt))
	}
	return json.Marshal(leaseWire{
		TTL:       humanwire.Format(l.TTL),
		ExpiresAt: expires,
	})
}

func (l *Lease) UnmarshalJSON(data []byte) error {
	var w leaseWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ttl, err := humanwire.Parse[time.Duration](w.TTL)
	if err != nil {
		return err
	}
	expires, err := humanwire.ParseNullable[time.Time](w.ExpiresAt)
	if err != nil {
		return err
	}
	l.TTL = ttl
	l.ExpiresAt = expires.Or(time.Time{})
	return nil
}
