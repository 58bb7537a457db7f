package fastmat

import (
	"bytes"
	"encoding/binary"
)

// blob layout: a little-endian header of (width int64, height int64)
// followed by width*height float32 elements in row-major order. This format
// is deliberately unremarkable: spec.md treats serialisation as an opaque
// external collaborator whose only contract is
// UnmarshalBinary(MarshalBinary(m)) == m.
const (
	sizeInt64   = 8
	sizeFloat32 = 4
)

// MarshalBinary encodes the receiver into a portable binary form.
func (m *LinearMatrix) MarshalBinary() ([]byte, error) {
	n := int64(m.w)*int64(m.h)*int64(sizeFloat32) + 2*int64(sizeInt64)
	buf := bytes.NewBuffer(make([]byte, 0, n))
	if err := binary.Write(buf, binary.LittleEndian, int64(m.w)); err != nil {
		return nil, &IOError{Op: "marshal width", Err: err}
	}
	if err := binary.Write(buf, binary.LittleEndian, int64(m.h)); err != nil {
		return nil, &IOError{Op: "marshal height", Err: err}
	}
	if err := binary.Write(buf, binary.LittleEndian, m.data); err != nil {
		return nil, &IOError{Op: "marshal data", Err: err}
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a blob produced by MarshalBinary into the
// receiver, replacing any prior contents.
func (m *LinearMatrix) UnmarshalBinary(data []byte) error {
	if len(data) < 2*sizeInt64 {
		return &IOError{Op: "unmarshal header", Err: errShortBuffer}
	}
	r := bytes.NewReader(data)
	var w, h int64
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return &IOError{Op: "unmarshal width", Err: err}
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return &IOError{Op: "unmarshal height", Err: err}
	}
	if w < 0 || h < 0 {
		return &IOError{Op: "unmarshal dims", Err: errBadDims}
	}
	want := w * h
	if int64(r.Len()) < want*sizeFloat32 {
		return &IOError{Op: "unmarshal data", Err: errShortBuffer}
	}
	elems := make([]float32, want)
	if err := binary.Read(r, binary.LittleEndian, elems); err != nil {
		return &IOError{Op: "unmarshal data", Err: err}
	}
	m.w, m.h, m.data = int(w), int(h), elems
	return nil
}

var (
	errShortBuffer = bufferError("fastmat: blob shorter than its declared header")
	errBadDims     = bufferError("fastmat: blob declares negative dimensions")
)

type bufferError string

func (e bufferError) Error() string { return string(e) }
