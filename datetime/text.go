package datetime

import "encoding"

var (
	_ encoding.TextMarshaler   = Instant{}
	_ encoding.TextUnmarshaler = (*Instant)(nil)
)

/***** METHOD **********************************/

// MarshalText renders i with DEFAULT_PATTERN. Milliseconds are dropped.
func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

/***********************************************/

// UnmarshalText parses DEFAULT_PATTERN. It lets an Instant be read directly
// from JSON, TOML and YAML documents.
func (i *Instant) UnmarshalText(text []byte) error {
	v, err := Parse(DEFAULT_PATTERN, string(text))

	if err != nil {
		return err
	}

	*i = v
	return nil
}

/***********************************************/
