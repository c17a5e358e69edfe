// Package humanwire provides human-readable wire representations for
// durations and points in time.
//
// Durations travel as free-form strings like "15 seconds", "15s", or
// "2h 30m"; timestamps travel as RFC3339 strings, accepted leniently and
// emitted canonically. The package plugs into encoding/json, gopkg.in/yaml.v3,
// github.com/vmihailenco/msgpack/v5, and github.com/fxamacker/cbor/v2 at the
// field level: the host structure keeps its own framing, only the scalar
// representation of the field changes.
//
// # Wrapper types
//
// Declare fields with Duration or Timestamp to get the textual form in both
// directions:
//
//	type Job struct {
//	    Timeout   humanwire.Duration  `json:"timeout" yaml:"timeout"`
//	    StartedAt humanwire.Timestamp `json:"started_at" yaml:"started_at"`
//	}
//
//	{"timeout": "2 minutes 30 seconds", "started_at": "2018-05-11 18:28:30"}
//
// decodes to 2m30s and 2018-05-11T18:28:30Z, and re-encodes as
//
//	{"timeout":"2m 30s","started_at":"2018-05-11T18:28:30Z"}
//
// # Decode-only wrapper
//
// Decoded[T] holds a value that provably went through a successful decode;
// it cannot be constructed any other way. The payload may be a native value
// or an Option of one, in which case a null scalar (or an untouched field)
// is None:
//
//	type Patch struct {
//	    Timeout humanwire.Decoded[humanwire.Option[time.Duration]] `json:"timeout"`
//	}
//
//	if v, ok := patch.Timeout.Value().Get(); ok { ... }
//
// # Functional hooks
//
// Hosts with their own marshal methods call the conversion directly, with
// no wrapper allocation:
//
//	func (l *Lease) UnmarshalJSON(data []byte) error {
//	    ...
//	    l.TTL, err = humanwire.Parse[time.Duration](raw.TTL)
//	    ...
//	}
//
// Parse, Format, ParseNullable, and FormatNullable share one implementation
// with the wrapper types.
//
// # Accepted and canonical forms
//
// Durations accept integer-and-unit terms (ns, us, ms, s, m, h, d, w,
// month, year, and their word spellings), separated or concatenated, and
// always encode as the shortest decomposition in d/h/m/s/ms/us/ns, e.g.
// "15s" or "2h 30m". Timestamps accept strict RFC3339 plus a weak variant
// (space separator, missing offset means UTC) and always encode as strict
// RFC3339 UTC with a trailing 'Z'.
//
// # Errors
//
// Decode failures are *ValueError values carrying the violated expectation
// and the raw offending input, and match ErrInvalidValue (and ErrNotString
// for non-string scalars) under errors.Is. Encoding never fails. No state
// is shared between calls; every operation is safe for concurrent use.
//
// # Supported kinds
//
// The set of codec-capable kinds is closed: KindDuration and KindTimestamp.
// Third-party types cannot opt in.
package humanwire
