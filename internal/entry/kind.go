package entry

import (
	"fmt"
	"strings"
)

// Kind classifies a filesystem path.
type Kind int

const (
	// KindUnknown covers anything that could not be classified: vanished
	// paths, permission failures and special files.
	KindUnknown Kind = iota
	// KindDirectory is a real directory (never a link to one)
	KindDirectory
	// KindFile is a regular file
	KindFile
	// KindLink is a symbolic link, dangling or not
	KindLink
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}

// ParseKind parses the output of Kind.String. The plural forms used by the
// CLI and the HTTP API ("directories", "files", "links") are accepted too.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "directory", "directories", "dir":
		return KindDirectory, nil
	case "file", "files":
		return KindFile, nil
	case "link", "links", "symlink":
		return KindLink, nil
	case "unknown":
		return KindUnknown, nil
	default:
		return KindUnknown, fmt.Errorf("invalid entry kind %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
