package inspector

import "github.com/iw2rmb/simpstr/utf8text"

// Stats summarizes a text for display.
type Stats struct {
	Bytes     int
	Chars     int
	Runes     int
	Width     int
	Allocated bool
}

func statsOf(t utf8text.Text) Stats {
	return Stats{
		Bytes:     t.ByteLen(),
		Chars:     t.Len(),
		Runes:     t.RuneCount(),
		Width:     t.Width(),
		Allocated: t.Allocated(),
	}
}

// ChangeEvent is passed to Config.OnChange after the text changes.
type ChangeEvent struct {
	Version uint64
	Stats   Stats
	Text    string
}
