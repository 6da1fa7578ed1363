// Package utf8text implements Text, an owning UTF-8/ASCII byte buffer that
// caches both its byte length and its character length.
//
// Character length is computed by a continuation-byte scan (see CountChars),
// not by full UTF-8 decoding. Offsets passed to ByteAt and SetByte are byte
// offsets.
//
// A Text is not safe for concurrent use. Mutations never write into a buffer
// another value can see.
package utf8text
