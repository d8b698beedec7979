package netkit

import (
	"os"
)

// Sink is an append-only destination for response bytes. Reset discards
// everything written so far; the retry orchestrator calls it before
// re-attempting a request so a failed attempt's partial body never leaks
// into the next one.
type Sink interface {
	Append(p []byte) error
	Len() int64
	Reset() error
}

// RangeSink is a Sink that additionally supports positioned writes, which
// segmented downloads need for disjoint-offset concurrent writers.
// Preallocate reserves the full resource length up front so every segment
// owns exclusive write rights to its own index range.
type RangeSink interface {
	Sink
	WriteAt(p []byte, off int64) (int, error)
	Preallocate(size int64) error
}

// StringSink accumulates the response body as text.
type StringSink struct {
	b []byte
}

func NewStringSink() *StringSink {
	return &StringSink{}
}

func (s *StringSink) Append(p []byte) error {
	s.b = append(s.b, p...)
	return nil
}

func (s *StringSink) Len() int64 {
	if s == nil {
		return 0
	}
	return int64(len(s.b))
}

func (s *StringSink) Reset() error {
	s.b = s.b[:0]
	return nil
}

func (s *StringSink) String() string {
	if s == nil {
		return ""
	}
	return string(s.b)
}

// BufferSink accumulates the response body in memory and doubles as the
// arena for segmented downloads: Preallocate sizes the buffer once and
// concurrent WriteAt calls fill disjoint ranges without locking.
type BufferSink struct {
	buf []byte
}

func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (b *BufferSink) Append(p []byte) error {
	b.buf = append(b.buf, p...)
	return nil
}

func (b *BufferSink) Len() int64 {
	if b == nil {
		return 0
	}
	return int64(len(b.buf))
}

func (b *BufferSink) Reset() error {
	b.buf = b.buf[:0]
	return nil
}

func (b *BufferSink) Preallocate(size int64) error {
	if int64(len(b.buf)) >= size {
		return nil
	}
	grown := make([]byte, size)
	copy(grown, b.buf)
	b.buf = grown
	return nil
}

func (b *BufferSink) WriteAt(p []byte, off int64) (int, error) {
	if need := off + int64(len(p)); need > int64(len(b.buf)) {
		if err := b.Preallocate(need); err != nil {
			return 0, err
		}
	}
	return copy(b.buf[off:], p), nil
}

func (b *BufferSink) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.buf
}

// FileSink streams the response body into a file. It satisfies RangeSink,
// so segmented downloads write each range directly at its final offset.
type FileSink struct {
	f *os.File
}

// NewFileSink creates (or truncates) the file at path.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	return &FileSink{f: f}, nil
}

func (s *FileSink) Append(p []byte) error {
	_, err := s.f.Write(p)
	return err
}

func (s *FileSink) Len() int64 {
	if s == nil || s.f == nil {
		return 0
	}
	info, err := s.f.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

func (s *FileSink) Reset() error {
	if err := s.f.Truncate(0); err != nil {
		return err
	}
	_, err := s.f.Seek(0, 0)
	return err
}

func (s *FileSink) Preallocate(size int64) error {
	return s.f.Truncate(size)
}

func (s *FileSink) WriteAt(p []byte, off int64) (int, error) {
	return s.f.WriteAt(p, off)
}

func (s *FileSink) Name() string {
	return s.f.Name()
}

func (s *FileSink) Close() error {
	return s.f.Close()
}
