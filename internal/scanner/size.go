package scanner

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

var sizePrefixes = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

// FormatSize renders a byte count with a binary prefix, e.g. "1.5 MiB".
func FormatSize(n int64) string {
	num := float64(n)
	for _, prefix := range sizePrefixes {
		if math.Abs(num) < 1024 {
			return fmt.Sprintf("%.1f %sB", num, prefix)
		}
		num /= 1024
	}
	return fmt.Sprintf("%.1f YiB", num)
}

// Size is either an exact byte count or an opaque, already formatted value
// such as "500.1 GB". Opaque sizes are for display only.
type Size struct {
	bytes  int64
	text   string
	opaque bool
}

// SizeBytes returns an exact size.
func SizeBytes(n int64) Size {
	return Size{bytes: n}
}

// OpaqueSize returns a size the tool only reported as rounded text.
func OpaqueSize(text string) Size {
	return Size{text: text, opaque: true}
}

// Int64 returns the exact byte count, if known.
func (s Size) Int64() (int64, bool) {
	if s.opaque {
		return 0, false
	}
	return s.bytes, true
}

// IsOpaque reports whether the size is display text rather than a byte count.
func (s Size) IsOpaque() bool {
	return s.opaque
}

// String formats exact sizes and returns opaque ones unchanged.
func (s Size) String() string {
	if s.opaque {
		return s.text
	}
	return FormatSize(s.bytes)
}

// ApproxBytes returns a best-effort byte count. Opaque sizes are parsed as
// humanized text, so "500.1 GB" reads with SI units.
func (s Size) ApproxBytes() (uint64, bool) {
	if !s.opaque {
		if s.bytes < 0 {
			return 0, false
		}
		return uint64(s.bytes), true
	}
	n, err := humanize.ParseBytes(s.text)
	if err != nil {
		return 0, false
	}
	return n, true
}
