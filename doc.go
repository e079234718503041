// Package binwire implements the bincode wire convention: a length-prefixed,
// tag-discriminated, little-endian binary format used for cross-language
// serialization.
//
// The package centers on a Reader/Writer pair driven directly by the caller
// (or by user record types implementing the Record interface). There is no
// schema and no reflection-driven struct walking: a record encodes itself by
// calling the writer's primitive methods in order, and decodes itself by
// calling the matching reads in the same order.
//
// Readers come in two safety modes. Checked mode (the default) validates the
// remaining length before every access and turns overruns into
// ErrBufferExhausted; it is safe for arbitrary untrusted input. Unchecked mode
// skips the guards for throughput and lets an overrun surface as a runtime
// slice-bounds panic. Never use unchecked mode on input you have not already
// validated.
//
// Numeric list reads return a view aliasing the reader's buffer whenever the
// element alignment works out, so large payloads decode without copying. The
// view is valid only as long as the underlying buffer; copy it if it has to
// outlive the reader's data.
//
// A Reader or Writer is single-threaded: one mutable cursor, no locking.
// Concurrent use requires independent instances. A SizeCache may be shared
// across instances.
package binwire
