package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Format identifies a document syntax. The zero value is the script
// format.
type Format int

const (
	ScriptFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type info struct {
	name     string
	aliases  []string
	suffixes []string
}

// indexed by Format; the first suffix is the one written.
var formats = []info{
	ScriptFormat: {"vsc", []string{"v", "script"}, []string{".vsc"}},
	YAMLFormat:   {"yaml", []string{"y", "yml"}, []string{".yaml", ".yml"}},
	JSONFormat:   {"json", []string{"j"}, []string{".json"}},
}

func (f Format) info() (info, bool) {
	if f < 0 || int(f) >= len(formats) {
		return info{}, false
	}
	return formats[f], true
}

// ParseFormat reads a format name or one of its short aliases.
func ParseFormat(v string) (Format, error) {
	for i, fi := range formats {
		if v == fi.name || slices.Contains(fi.aliases, v) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	fi, ok := f.info()
	if !ok {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return fi.name
}

func (f Format) MarshalText() ([]byte, error) {
	fi, ok := f.info()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(fi.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool   { return f == JSONFormat }
func (f Format) IsScript() bool { return f == ScriptFormat }

// Suffix is the file extension written for f, with its dot.
func (f Format) Suffix() string {
	fi, ok := f.info()
	if !ok {
		return ""
	}
	return fi.suffixes[0]
}

// FromSuffix guesses the format of a file from its extension, ignoring
// case. Unknown extensions are read as script.
func FromSuffix(name string) Format {
	ext := strings.ToLower(filepath.Ext(name))
	for i, fi := range formats {
		if slices.Contains(fi.suffixes, ext) {
			return Format(i)
		}
	}
	return ScriptFormat
}

func AllFormats() []Format {
	return []Format{ScriptFormat, YAMLFormat, JSONFormat}
}
