package pjmsplot

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DecodeTheme reads a TOML theme from r. Settings missing in r keep
// their DefaultTheme value:
//
//	palette = ["#77aadd", "#ee8866"]
//
//	[font]
//	label = 12
//
//	[output]
//	bbox = ""
func DecodeTheme(r io.Reader) (Theme, error) {
	t := DefaultTheme()
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Theme{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidTheme, strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadTheme reads a TOML theme from the named file.
func LoadTheme(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, err
	}
	defer f.Close()

	t, err := DecodeTheme(f)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// EncodeTheme writes t as TOML in the layout DecodeTheme reads.
func EncodeTheme(w io.Writer, t Theme) error {
	return toml.NewEncoder(w).Encode(t)
}
