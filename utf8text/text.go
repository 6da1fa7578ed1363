package utf8text

import (
	"bytes"
	"io"
	"math"

	"github.com/iw2rmb/simpstr/internal/termwidth"
)

// Text owns a UTF-8 byte buffer and its cached character length.
//
// The zero value is empty and holds no allocation. A Text copied with = may
// alias the same bytes, but every mutation writes to a fresh buffer, so one
// value never observes another's changes. Use Clone or From for an
// independent buffer and Take to move the content out.
type Text struct {
	buf   []byte
	chars int
}

// Empty returns an empty Text. It is equivalent to the zero value.
func Empty() Text { return Text{} }

// FromBytes copies p up to, but not including, the first NUL byte.
func FromBytes(p []byte) Text {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	if len(p) == 0 {
		return Text{}
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	return Text{buf: buf, chars: CountChars(buf)}
}

// FromString is FromBytes for a Go string.
func FromString(s string) Text {
	return FromBytes([]byte(s))
}

// From returns an independent copy of other.
func From(other Text) Text { return other.Clone() }

// Clone returns a copy of t that shares no storage with it.
func (t Text) Clone() Text {
	if t.buf == nil {
		return Text{}
	}
	buf := make([]byte, len(t.buf))
	copy(buf, t.buf)
	return Text{buf: buf, chars: t.chars}
}

// Take moves the content out of t and leaves t empty.
func (t *Text) Take() Text {
	out := *t
	*t = Text{}
	return out
}

// ByteLen returns the number of bytes in t.
func (t Text) ByteLen() int { return len(t.buf) }

// Len returns the character length.
func (t Text) Len() int { return t.chars }

// Allocated reports whether t currently holds a buffer.
func (t Text) Allocated() bool { return t.buf != nil }

// IsEmpty reports whether t holds no buffer. It is the inverse of Allocated.
func (t Text) IsEmpty() bool { return t.buf == nil }

// Bytes returns the underlying buffer, or nil when t is empty.
// The slice aliases t and must not be modified; use SetByte instead.
func (t Text) Bytes() []byte { return t.buf }

// String returns a copy of the content. It returns "" when t is empty.
func (t Text) String() string { return string(t.buf) }

// Width returns the terminal cell width of the content.
func (t Text) Width() int { return termwidth.Width(string(t.buf)) }

// Clear releases the buffer. Clearing an empty Text does nothing.
func (t *Text) Clear() {
	if t.buf == nil {
		return
	}
	t.buf = nil
	t.chars = 0
}

// Assign replaces t with a copy of other.
//
// An empty other leaves t unchanged; call Clear first to reset t.
func (t *Text) Assign(other Text) {
	if other.buf == nil {
		return
	}
	*t = other.Clone()
}

// Append concatenates other onto t.
//
// The resulting character length is t.Len()+other.Len(); the joined buffer
// is not rescanned, so a continuation run that straddles the seam keeps the
// counts its halves had on their own.
func (t *Text) Append(other Text) {
	if other.buf == nil {
		return
	}
	t.join(other.buf, other.chars)
}

func (t *Text) join(p []byte, chars int) {
	if len(t.buf) > math.MaxInt-len(p) {
		panic(ErrTooLarge)
	}
	buf := make([]byte, len(t.buf)+len(p))
	n := copy(buf, t.buf)
	copy(buf[n:], p)
	t.buf = buf
	t.chars += chars
}

// Concat returns a new Text holding a followed by b.
func Concat(a, b Text) Text {
	out := a.Clone()
	out.Append(b)
	return out
}

// Write appends p as if by Append(FromBytes(p)). It always reports len(p).
func (t *Text) Write(p []byte) (int, error) {
	n := len(p)
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	if len(p) > 0 {
		t.join(p, CountChars(p))
	}
	return n, nil
}

// WriteString is Write for a Go string.
func (t *Text) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// ByteAt returns the byte at offset i.
func (t Text) ByteAt(i int) (byte, error) {
	if i < 0 || i >= len(t.buf) {
		return 0, indexError(i, len(t.buf))
	}
	return t.buf[i], nil
}

// SetByte replaces the byte at offset i and recounts characters.
// The write goes to a new buffer; copies of t keep their content.
func (t *Text) SetByte(i int, b byte) error {
	if i < 0 || i >= len(t.buf) {
		return indexError(i, len(t.buf))
	}
	buf := make([]byte, len(t.buf))
	copy(buf, t.buf)
	buf[i] = b
	t.buf = buf
	t.chars = CountChars(buf)
	return nil
}

// WriteTo writes the raw bytes of t to w. An empty Text writes nothing.
func (t Text) WriteTo(w io.Writer) (int64, error) {
	if t.buf == nil {
		return 0, nil
	}
	n, err := w.Write(t.buf)
	return int64(n), err
}

// MarshalText returns a copy of the content; an empty Text yields an empty slice.
func (t Text) MarshalText() ([]byte, error) {
	if t.buf == nil {
		return []byte{}, nil
	}
	out := make([]byte, len(t.buf))
	copy(out, t.buf)
	return out, nil
}

// UnmarshalText replaces t with FromBytes(p). Unlike Assign, empty input
// clears t.
func (t *Text) UnmarshalText(p []byte) error {
	*t = FromBytes(p)
	return nil
}
