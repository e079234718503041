package binwire

import "time"

const nanosPerSecond = 1_000_000_000

// Duration is the wire representation of a span of time: a signed seconds
// count and a nanosecond remainder in [0, 1e9). It covers the full i64
// seconds range, which time.Duration cannot.
type Duration struct {
	Secs  int64
	Nanos uint32
}

// Std converts to time.Duration. Spans outside time.Duration's ~292-year
// range wrap; use the raw fields when that matters.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Secs)*time.Second + time.Duration(d.Nanos)
}

// DurationFrom converts a time.Duration to its wire form. Negative spans
// borrow from the seconds so the nanosecond remainder stays in [0, 1e9).
func DurationFrom(d time.Duration) Duration {
	secs := int64(d / time.Second)
	nanos := int64(d % time.Second)
	if nanos < 0 {
		secs--
		nanos += nanosPerSecond
	}
	return Duration{Secs: secs, Nanos: uint32(nanos)}
}
