package binwire

import (
	"github.com/rs/zerolog"
)

// TraceReader wraps a Reader and logs every operation at debug level before
// delegating. It holds no state of its own and changes no behavior; remove
// the wrapper and the byte stream decodes identically.
type TraceReader struct {
	r   *Reader
	log zerolog.Logger
}

// NewTraceReader wraps r with a logging decorator.
func NewTraceReader(r *Reader, log zerolog.Logger) *TraceReader {
	return &TraceReader{r: r, log: log}
}

// Inner returns the wrapped Reader, for record implementations that need the
// raw surface.
func (t *TraceReader) Inner() *Reader { return t.r }

// Pos delegates to the wrapped reader.
func (t *TraceReader) Pos() int { return t.r.Pos() }

// Remaining delegates to the wrapped reader.
func (t *TraceReader) Remaining() int { return t.r.Remaining() }

func (t *TraceReader) emit(op string, at int, err error) *zerolog.Event {
	e := t.log.Debug().Str("op", op).Int("at", at).Int("pos", t.r.Pos())
	if err != nil {
		e = e.Err(err)
	}
	return e
}

// ReadU8 delegates and logs.
func (t *TraceReader) ReadU8() (uint8, error) {
	at := t.r.Pos()
	v, err := t.r.ReadU8()
	t.emit("u8", at, err).Uint8("val", v).Send()
	return v, err
}

// ReadU16 delegates and logs.
func (t *TraceReader) ReadU16() (uint16, error) {
	at := t.r.Pos()
	v, err := t.r.ReadU16()
	t.emit("u16", at, err).Uint16("val", v).Send()
	return v, err
}

// ReadU32 delegates and logs.
func (t *TraceReader) ReadU32() (uint32, error) {
	at := t.r.Pos()
	v, err := t.r.ReadU32()
	t.emit("u32", at, err).Uint32("val", v).Send()
	return v, err
}

// ReadU64 delegates and logs.
func (t *TraceReader) ReadU64() (uint64, error) {
	at := t.r.Pos()
	v, err := t.r.ReadU64()
	t.emit("u64", at, err).Uint64("val", v).Send()
	return v, err
}

// ReadI8 delegates and logs.
func (t *TraceReader) ReadI8() (int8, error) {
	at := t.r.Pos()
	v, err := t.r.ReadI8()
	t.emit("i8", at, err).Int8("val", v).Send()
	return v, err
}

// ReadI16 delegates and logs.
func (t *TraceReader) ReadI16() (int16, error) {
	at := t.r.Pos()
	v, err := t.r.ReadI16()
	t.emit("i16", at, err).Int16("val", v).Send()
	return v, err
}

// ReadI32 delegates and logs.
func (t *TraceReader) ReadI32() (int32, error) {
	at := t.r.Pos()
	v, err := t.r.ReadI32()
	t.emit("i32", at, err).Int32("val", v).Send()
	return v, err
}

// ReadI64 delegates and logs.
func (t *TraceReader) ReadI64() (int64, error) {
	at := t.r.Pos()
	v, err := t.r.ReadI64()
	t.emit("i64", at, err).Int64("val", v).Send()
	return v, err
}

// ReadF32 delegates and logs.
func (t *TraceReader) ReadF32() (float32, error) {
	at := t.r.Pos()
	v, err := t.r.ReadF32()
	t.emit("f32", at, err).Float32("val", v).Send()
	return v, err
}

// ReadF64 delegates and logs.
func (t *TraceReader) ReadF64() (float64, error) {
	at := t.r.Pos()
	v, err := t.r.ReadF64()
	t.emit("f64", at, err).Float64("val", v).Send()
	return v, err
}

// ReadBool delegates and logs.
func (t *TraceReader) ReadBool() (bool, error) {
	at := t.r.Pos()
	v, err := t.r.ReadBool()
	t.emit("bool", at, err).Bool("val", v).Send()
	return v, err
}

// ReadBytes delegates and logs the byte count, not the payload.
func (t *TraceReader) ReadBytes(n int) ([]byte, error) {
	at := t.r.Pos()
	v, err := t.r.ReadBytes(n)
	t.emit("bytes", at, err).Int("len", n).Send()
	return v, err
}

// ReadByteSlice delegates and logs.
func (t *TraceReader) ReadByteSlice() ([]byte, error) {
	at := t.r.Pos()
	v, err := t.r.ReadByteSlice()
	t.emit("byteslice", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadString delegates and logs.
func (t *TraceReader) ReadString() (string, error) {
	at := t.r.Pos()
	v, err := t.r.ReadString()
	t.emit("string", at, err).Str("val", v).Send()
	return v, err
}

// ReadFixedString delegates and logs.
func (t *TraceReader) ReadFixedString(n int) (string, error) {
	at := t.r.Pos()
	v, err := t.r.ReadFixedString(n)
	t.emit("fixedstring", at, err).Str("val", v).Send()
	return v, err
}

// ReadChar delegates and logs.
func (t *TraceReader) ReadChar() (rune, error) {
	at := t.r.Pos()
	v, err := t.r.ReadChar()
	t.emit("char", at, err).Str("val", string(v)).Send()
	return v, err
}

// ReadDuration delegates and logs.
func (t *TraceReader) ReadDuration() (Duration, error) {
	at := t.r.Pos()
	v, err := t.r.ReadDuration()
	t.emit("duration", at, err).Int64("secs", v.Secs).Uint32("nanos", v.Nanos).Send()
	return v, err
}

// ReadEnum delegates and logs.
func (t *TraceReader) ReadEnum() (uint32, error) {
	at := t.r.Pos()
	v, err := t.r.ReadEnum()
	t.emit("enum", at, err).Uint32("variant", v).Send()
	return v, err
}

// ReadFixedStringClean delegates and logs.
func (t *TraceReader) ReadFixedStringClean(n int) (string, error) {
	at := t.r.Pos()
	v, err := t.r.ReadFixedStringClean(n)
	t.emit("fixedstringclean", at, err).Str("val", v).Send()
	return v, err
}

// Seek delegates and logs.
func (t *TraceReader) Seek(pos int) error {
	at := t.r.Pos()
	err := t.r.Seek(pos)
	t.emit("seek", at, err).Int("to", pos).Send()
	return err
}

// Skip delegates and logs.
func (t *TraceReader) Skip(n int) error {
	at := t.r.Pos()
	err := t.r.Skip(n)
	t.emit("skip", at, err).Int("n", n).Send()
	return err
}

// ReadOptionBool delegates and logs.
func (t *TraceReader) ReadOptionBool() (bool, bool, error) {
	at := t.r.Pos()
	v, present, err := t.r.ReadOptionBool()
	t.emit("option:bool", at, err).Bool("present", present).Bool("val", v).Send()
	return v, present, err
}

// ReadOptionU32 delegates and logs.
func (t *TraceReader) ReadOptionU32() (uint32, bool, error) {
	at := t.r.Pos()
	v, present, err := t.r.ReadOptionU32()
	t.emit("option:u32", at, err).Bool("present", present).Uint32("val", v).Send()
	return v, present, err
}

// ReadOptionString delegates and logs.
func (t *TraceReader) ReadOptionString() (string, bool, error) {
	at := t.r.Pos()
	v, present, err := t.r.ReadOptionString()
	t.emit("option:string", at, err).Bool("present", present).Str("val", v).Send()
	return v, present, err
}

// ReadU8List delegates and logs the element count.
func (t *TraceReader) ReadU8List() ([]uint8, error) {
	at := t.r.Pos()
	v, err := t.r.ReadU8List()
	t.emit("u8list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadU16List delegates and logs.
func (t *TraceReader) ReadU16List() ([]uint16, error) {
	at := t.r.Pos()
	v, err := t.r.ReadU16List()
	t.emit("u16list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadU32List delegates and logs.
func (t *TraceReader) ReadU32List() ([]uint32, error) {
	at := t.r.Pos()
	v, err := t.r.ReadU32List()
	t.emit("u32list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadU64List delegates and logs.
func (t *TraceReader) ReadU64List() ([]uint64, error) {
	at := t.r.Pos()
	v, err := t.r.ReadU64List()
	t.emit("u64list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadI8List delegates and logs.
func (t *TraceReader) ReadI8List() ([]int8, error) {
	at := t.r.Pos()
	v, err := t.r.ReadI8List()
	t.emit("i8list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadI16List delegates and logs.
func (t *TraceReader) ReadI16List() ([]int16, error) {
	at := t.r.Pos()
	v, err := t.r.ReadI16List()
	t.emit("i16list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadI32List delegates and logs.
func (t *TraceReader) ReadI32List() ([]int32, error) {
	at := t.r.Pos()
	v, err := t.r.ReadI32List()
	t.emit("i32list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadI64List delegates and logs.
func (t *TraceReader) ReadI64List() ([]int64, error) {
	at := t.r.Pos()
	v, err := t.r.ReadI64List()
	t.emit("i64list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadF32List delegates and logs.
func (t *TraceReader) ReadF32List() ([]float32, error) {
	at := t.r.Pos()
	v, err := t.r.ReadF32List()
	t.emit("f32list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadF64List delegates and logs.
func (t *TraceReader) ReadF64List() ([]float64, error) {
	at := t.r.Pos()
	v, err := t.r.ReadF64List()
	t.emit("f64list", at, err).Int("len", len(v)).Send()
	return v, err
}

// ReadOptionRecord delegates and logs.
func (t *TraceReader) ReadOptionRecord(rec Record) (bool, error) {
	at := t.r.Pos()
	present, err := t.r.ReadOptionRecord(rec)
	t.emit("option:record", at, err).Bool("present", present).Type("record", rec).Send()
	return present, err
}

// ReadOptionFixedRecord delegates and logs.
func (t *TraceReader) ReadOptionFixedRecord(rec Record) (bool, error) {
	at := t.r.Pos()
	present, err := t.r.ReadOptionFixedRecord(rec)
	t.emit("option:fixedrecord", at, err).Bool("present", present).Type("record", rec).Send()
	return present, err
}

// ReadRecord delegates and logs; the record's own reads inside go through
// the raw reader, untraced.
func (t *TraceReader) ReadRecord(rec Record) error {
	at := t.r.Pos()
	err := t.r.ReadRecord(rec)
	t.emit("record", at, err).Type("record", rec).Send()
	return err
}

// ReadFixedRecord delegates and logs.
func (t *TraceReader) ReadFixedRecord(rec Record) error {
	at := t.r.Pos()
	err := t.r.ReadFixedRecord(rec)
	t.emit("fixedrecord", at, err).Type("record", rec).Send()
	return err
}

// TraceWriter wraps a Writer and logs every operation at debug level before
// delegating; pure delegation, no independent state.
type TraceWriter struct {
	w   *Writer
	log zerolog.Logger
}

// NewTraceWriter wraps w with a logging decorator.
func NewTraceWriter(w *Writer, log zerolog.Logger) *TraceWriter {
	return &TraceWriter{w: w, log: log}
}

// Inner returns the wrapped Writer.
func (t *TraceWriter) Inner() *Writer { return t.w }

// Pos delegates.
func (t *TraceWriter) Pos() int { return t.w.Pos() }

// Bytes delegates.
func (t *TraceWriter) Bytes() []byte { return t.w.Bytes() }

func (t *TraceWriter) emit(op string, at int, err error) *zerolog.Event {
	e := t.log.Debug().Str("op", op).Int("at", at).Int("pos", t.w.Pos())
	if err != nil {
		e = e.Err(err)
	}
	return e
}

// WriteU8 delegates and logs.
func (t *TraceWriter) WriteU8(v uint8) error {
	at := t.w.Pos()
	err := t.w.WriteU8(v)
	t.emit("u8", at, err).Uint8("val", v).Send()
	return err
}

// WriteU16 delegates and logs.
func (t *TraceWriter) WriteU16(v uint16) error {
	at := t.w.Pos()
	err := t.w.WriteU16(v)
	t.emit("u16", at, err).Uint16("val", v).Send()
	return err
}

// WriteU32 delegates and logs.
func (t *TraceWriter) WriteU32(v uint32) error {
	at := t.w.Pos()
	err := t.w.WriteU32(v)
	t.emit("u32", at, err).Uint32("val", v).Send()
	return err
}

// WriteU64 delegates and logs.
func (t *TraceWriter) WriteU64(v uint64) error {
	at := t.w.Pos()
	err := t.w.WriteU64(v)
	t.emit("u64", at, err).Uint64("val", v).Send()
	return err
}

// WriteI8 delegates and logs.
func (t *TraceWriter) WriteI8(v int8) error {
	at := t.w.Pos()
	err := t.w.WriteI8(v)
	t.emit("i8", at, err).Int8("val", v).Send()
	return err
}

// WriteI16 delegates and logs.
func (t *TraceWriter) WriteI16(v int16) error {
	at := t.w.Pos()
	err := t.w.WriteI16(v)
	t.emit("i16", at, err).Int16("val", v).Send()
	return err
}

// WriteI32 delegates and logs.
func (t *TraceWriter) WriteI32(v int32) error {
	at := t.w.Pos()
	err := t.w.WriteI32(v)
	t.emit("i32", at, err).Int32("val", v).Send()
	return err
}

// WriteI64 delegates and logs.
func (t *TraceWriter) WriteI64(v int64) error {
	at := t.w.Pos()
	err := t.w.WriteI64(v)
	t.emit("i64", at, err).Int64("val", v).Send()
	return err
}

// WriteF32 delegates and logs.
func (t *TraceWriter) WriteF32(v float32) error {
	at := t.w.Pos()
	err := t.w.WriteF32(v)
	t.emit("f32", at, err).Float32("val", v).Send()
	return err
}

// WriteF64 delegates and logs.
func (t *TraceWriter) WriteF64(v float64) error {
	at := t.w.Pos()
	err := t.w.WriteF64(v)
	t.emit("f64", at, err).Float64("val", v).Send()
	return err
}

// WriteBool delegates and logs.
func (t *TraceWriter) WriteBool(v bool) error {
	at := t.w.Pos()
	err := t.w.WriteBool(v)
	t.emit("bool", at, err).Bool("val", v).Send()
	return err
}

// WriteBytes delegates and logs the byte count.
func (t *TraceWriter) WriteBytes(b []byte) error {
	at := t.w.Pos()
	err := t.w.WriteBytes(b)
	t.emit("bytes", at, err).Int("len", len(b)).Send()
	return err
}

// WriteByteSlice delegates and logs.
func (t *TraceWriter) WriteByteSlice(b []byte) error {
	at := t.w.Pos()
	err := t.w.WriteByteSlice(b)
	t.emit("byteslice", at, err).Int("len", len(b)).Send()
	return err
}

// WriteString delegates and logs.
func (t *TraceWriter) WriteString(s string) error {
	at := t.w.Pos()
	err := t.w.WriteString(s)
	t.emit("string", at, err).Str("val", s).Send()
	return err
}

// WriteFixedString delegates and logs.
func (t *TraceWriter) WriteFixedString(s string, n int) error {
	at := t.w.Pos()
	err := t.w.WriteFixedString(s, n)
	t.emit("fixedstring", at, err).Str("val", s).Int("width", n).Send()
	return err
}

// WriteChar delegates and logs.
func (t *TraceWriter) WriteChar(c rune) error {
	at := t.w.Pos()
	err := t.w.WriteChar(c)
	t.emit("char", at, err).Str("val", string(c)).Send()
	return err
}

// WriteDuration delegates and logs.
func (t *TraceWriter) WriteDuration(d Duration) error {
	at := t.w.Pos()
	err := t.w.WriteDuration(d)
	t.emit("duration", at, err).Int64("secs", d.Secs).Uint32("nanos", d.Nanos).Send()
	return err
}

// WriteEnum delegates and logs.
func (t *TraceWriter) WriteEnum(v uint32) error {
	at := t.w.Pos()
	err := t.w.WriteEnum(v)
	t.emit("enum", at, err).Uint32("variant", v).Send()
	return err
}

// WriteOptionBool delegates and logs.
func (t *TraceWriter) WriteOptionBool(v bool, present bool) error {
	at := t.w.Pos()
	err := t.w.WriteOptionBool(v, present)
	t.emit("option:bool", at, err).Bool("present", present).Bool("val", v).Send()
	return err
}

// WriteOptionU32 delegates and logs.
func (t *TraceWriter) WriteOptionU32(v uint32, present bool) error {
	at := t.w.Pos()
	err := t.w.WriteOptionU32(v, present)
	t.emit("option:u32", at, err).Bool("present", present).Uint32("val", v).Send()
	return err
}

// WriteOptionString delegates and logs.
func (t *TraceWriter) WriteOptionString(v string, present bool) error {
	at := t.w.Pos()
	err := t.w.WriteOptionString(v, present)
	t.emit("option:string", at, err).Bool("present", present).Str("val", v).Send()
	return err
}

// WriteU8List delegates and logs the element count.
func (t *TraceWriter) WriteU8List(xs []uint8) error {
	at := t.w.Pos()
	err := t.w.WriteU8List(xs)
	t.emit("u8list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteU16List delegates and logs.
func (t *TraceWriter) WriteU16List(xs []uint16) error {
	at := t.w.Pos()
	err := t.w.WriteU16List(xs)
	t.emit("u16list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteU32List delegates and logs.
func (t *TraceWriter) WriteU32List(xs []uint32) error {
	at := t.w.Pos()
	err := t.w.WriteU32List(xs)
	t.emit("u32list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteU64List delegates and logs.
func (t *TraceWriter) WriteU64List(xs []uint64) error {
	at := t.w.Pos()
	err := t.w.WriteU64List(xs)
	t.emit("u64list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteI8List delegates and logs.
func (t *TraceWriter) WriteI8List(xs []int8) error {
	at := t.w.Pos()
	err := t.w.WriteI8List(xs)
	t.emit("i8list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteI16List delegates and logs.
func (t *TraceWriter) WriteI16List(xs []int16) error {
	at := t.w.Pos()
	err := t.w.WriteI16List(xs)
	t.emit("i16list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteI32List delegates and logs.
func (t *TraceWriter) WriteI32List(xs []int32) error {
	at := t.w.Pos()
	err := t.w.WriteI32List(xs)
	t.emit("i32list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteI64List delegates and logs.
func (t *TraceWriter) WriteI64List(xs []int64) error {
	at := t.w.Pos()
	err := t.w.WriteI64List(xs)
	t.emit("i64list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteF32List delegates and logs.
func (t *TraceWriter) WriteF32List(xs []float32) error {
	at := t.w.Pos()
	err := t.w.WriteF32List(xs)
	t.emit("f32list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteF64List delegates and logs.
func (t *TraceWriter) WriteF64List(xs []float64) error {
	at := t.w.Pos()
	err := t.w.WriteF64List(xs)
	t.emit("f64list", at, err).Int("len", len(xs)).Send()
	return err
}

// WriteOptionRecord delegates and logs.
func (t *TraceWriter) WriteOptionRecord(rec Record, present bool) error {
	at := t.w.Pos()
	err := t.w.WriteOptionRecord(rec, present)
	t.emit("option:record", at, err).Bool("present", present).Send()
	return err
}

// WriteOptionFixedRecord delegates and logs.
func (t *TraceWriter) WriteOptionFixedRecord(rec Record, present bool) error {
	at := t.w.Pos()
	err := t.w.WriteOptionFixedRecord(rec, present)
	t.emit("option:fixedrecord", at, err).Bool("present", present).Send()
	return err
}

// WriteRecord delegates and logs.
func (t *TraceWriter) WriteRecord(rec Record) error {
	at := t.w.Pos()
	err := t.w.WriteRecord(rec)
	t.emit("record", at, err).Type("record", rec).Send()
	return err
}

// WriteFixedRecord delegates and logs.
func (t *TraceWriter) WriteFixedRecord(rec Record) error {
	at := t.w.Pos()
	err := t.w.WriteFixedRecord(rec)
	t.emit("fixedrecord", at, err).Type("record", rec).Send()
	return err
}
