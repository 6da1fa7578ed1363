package utf8text

import (
	"fmt"

	"golang.org/x/text/encoding"
)

// Decode transcodes p from enc into UTF-8 and returns it as a Text.
// The NUL rule of FromBytes applies to the decoded bytes.
func Decode(enc encoding.Encoding, p []byte) (Text, error) {
	out, err := enc.NewDecoder().Bytes(p)
	if err != nil {
		return Text{}, fmt.Errorf("utf8text: decode: %w", err)
	}
	return FromBytes(out), nil
}

// Encode transcodes t from UTF-8 into enc. An empty Text encodes to nil.
func (t Text) Encode(enc encoding.Encoding) ([]byte, error) {
	if t.buf == nil {
		return nil, nil
	}
	out, err := enc.NewEncoder().Bytes(t.buf)
	if err != nil {
		return nil, fmt.Errorf("utf8text: encode: %w", err)
	}
	return out, nil
}
