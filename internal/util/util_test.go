package util

import (
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "image limit", bytes: 2 * 1024 * 1024, expected: "2.0 MB"},
		{name: "request body limit", bytes: 5 * 1024 * 1024, expected: "5.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "otp lifetime", duration: 10 * time.Minute, expected: "10m0s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestContentChecksum(t *testing.T) {
	t.Parallel()

	a := ContentChecksum([]byte("image-bytes"))
	b := ContentChecksum([]byte("image-bytes"))
	c := ContentChecksum([]byte("other-bytes"))

	if a != b {
		t.Fatalf("same content produced %s and %s", a, b)
	}
	if a == c {
		t.Fatal("different content produced the same checksum")
	}
	if len(a) != 64 {
		t.Fatalf("checksum length = %d, want 64", len(a))
	}
}

func TestReadLimited(t *testing.T) {
	t.Parallel()

	data, err := ReadLimited(strings.NewReader("1234"), 4)
	if err != nil || string(data) != "1234" {
		t.Fatalf("ReadLimited at limit = %q, %v", data, err)
	}

	if _, err := ReadLimited(strings.NewReader("12345"), 4); err == nil {
		t.Fatal("ReadLimited over limit returned no error")
	}
}
