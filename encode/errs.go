package encode

import (
	"errors"
	"fmt"
	"io"
)

var ErrEncoding = errors.New("encoding error")

// SinkError reports a failed write to the output, with the number of
// bytes written before the failure.
type SinkError struct {
	Written int64
	Err     error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("write failed after %d bytes: %v", e.Written, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// sink counts what is written to w and stops at the first failure.
type sink struct {
	w   io.Writer
	n   int64
	err error
}

func (s *sink) Write(d []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(d)
	s.n += int64(n)
	if err == nil && n < len(d) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = &SinkError{Written: s.n, Err: err}
		return n, s.err
	}
	return n, nil
}
