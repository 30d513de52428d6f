package scanner

import (
	"errors"
	"runtime"
	"testing"
)

func TestPlatformForGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want Platform
		tool string
	}{
		{"linux", PlatformLinux, "lsblk"},
		{"android", PlatformLinux, "lsblk"},
		{"windows", PlatformWindows, "diskpart"},
		{"darwin", PlatformDarwin, "diskutil"},
		{"js", PlatformHosted, "none"},
		{"wasip1", PlatformHosted, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := PlatformForGOOS(tt.goos)
			if err != nil {
				t.Fatalf("PlatformForGOOS(%q): %v", tt.goos, err)
			}
			if got != tt.want {
				t.Errorf("PlatformForGOOS(%q) = %s, want %s", tt.goos, got, tt.want)
			}
			if got.Tool() != tt.tool {
				t.Errorf("%s.Tool() = %q, want %q", got, got.Tool(), tt.tool)
			}
		})
	}
}

func TestPlatformForGOOS_Unsupported(t *testing.T) {
	for _, goos := range []string{"plan9", "freebsd", ""} {
		p, err := PlatformForGOOS(goos)
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("PlatformForGOOS(%q) error = %v, want ErrUnsupportedPlatform", goos, err)
		}
		if p != PlatformUnknown {
			t.Errorf("PlatformForGOOS(%q) = %s, want unknown", goos, p)
		}
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input string
		want  Platform
	}{
		{"linux", PlatformLinux},
		{"Windows", PlatformWindows},
		{"darwin", PlatformDarwin},
		{"macos", PlatformDarwin},
		{" hosted ", PlatformHosted},
	}

	for _, tt := range tests {
		got, err := ParsePlatform(tt.input)
		if err != nil {
			t.Errorf("ParsePlatform(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePlatform(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := ParsePlatform("beos"); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("ParsePlatform(beos) error = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestParsePlatform_Auto(t *testing.T) {
	want, wantErr := PlatformForGOOS(runtime.GOOS)
	for _, input := range []string{"", "auto"} {
		got, err := ParsePlatform(input)
		if (err != nil) != (wantErr != nil) || got != want {
			t.Errorf("ParsePlatform(%q) = %s, %v; want %s, %v", input, got, err, want, wantErr)
		}
	}
}

func TestPlatform_String(t *testing.T) {
	if PlatformUnknown.String() != "unknown" || PlatformUnknown.Tool() != "none" {
		t.Errorf("unknown platform renders as %q/%q", PlatformUnknown, PlatformUnknown.Tool())
	}
	if Platform(42).String() != "unknown" {
		t.Errorf("out-of-range platform renders as %q", Platform(42))
	}
}
