package printer

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, UseColor(ColorAlways, &buf))
	assert.False(t, UseColor(ColorNever, &buf))
	assert.False(t, UseColor(ColorAuto, &buf), "a buffer is not a terminal")
}

func TestMatch(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorNever)

	p.Match("input.txt", 42)
	p.Count("input.txt", 3)
	assert.Equal(t, "input.txt:42\ninput.txt:3\n", buf.String())
}

func TestMatchContext(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		offset  int
		length  int
		context int
		want    string
	}{
		{"middle", "the quick brown fox", 4, 5, 3, "-:4: he quick br\n"},
		{"clipped_left", "abcdef", 0, 2, 3, "-:0: abcde\n"},
		{"clipped_right", "abcdef", 4, 2, 3, "-:4: bcdef\n"},
		{"control_bytes", "a\nb\tc", 2, 1, 2, "-:2: a.b.c\n"},
		{"no_context", "xyz", 1, 1, 0, "-:1: y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, ColorNever).MatchContext("-", tt.offset, tt.length, tt.context, []byte(tt.text))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestColorAlways(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorAlways).Match("f", 1)
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestResult(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorNever)

	p.Result("gsv", 7, 1500*time.Microsecond, true)
	p.Result("kmp", 6, time.Millisecond, false)

	out := buf.String()
	assert.Contains(t, out, "gsv")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "MISMATCH")
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorNever).Warn("skipped %s", "dir")
	assert.Equal(t, "warning: skipped dir\n", buf.String())
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorNever).Error(errors.New("boom"))
	assert.Equal(t, "error: boom\n", buf.String())
}
