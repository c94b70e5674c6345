package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLinePrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewLine(strings.NewReader("  Ava  \r\n1 2 3\nlast"), &out)

	tests := []string{"  Ava  ", "1 2 3", "last"}
	for i, want := range tests {
		got, err := c.Prompt("> ")
		if err != nil {
			t.Fatalf("Prompt %d: %v", i, err)
		}
		if got != want {
			t.Errorf("Prompt %d = %q, want %q", i, got, want)
		}
	}

	if _, err := c.Prompt("> "); !errors.Is(err, io.EOF) {
		t.Errorf("Prompt after input = %v, want io.EOF", err)
	}
	if got := out.String(); got != "> > > > " {
		t.Errorf("output = %q", got)
	}
}

func TestLineAnnounce(t *testing.T) {
	var out bytes.Buffer
	c := NewLine(strings.NewReader(""), &out)
	c.Announce("hello")
	c.Announce("world")
	if got := out.String(); got != "hello\nworld\n" {
		t.Errorf("output = %q", got)
	}
}

type colorRecorder struct {
	plain   []string
	colored []string
}

func (r *colorRecorder) Prompt(string) (string, error) { return "", io.EOF }
func (r *colorRecorder) Announce(text string)          { r.plain = append(r.plain, text) }
func (r *colorRecorder) AnnounceColor(text, hex string) {
	r.colored = append(r.colored, hex+" "+text)
}

func TestAnnounceColor(t *testing.T) {
	rec := &colorRecorder{}
	AnnounceColor(rec, "Wolf", "#AAAAAA")
	AnnounceColor(rec, "Ghost", "")
	if len(rec.colored) != 1 || rec.colored[0] != "#AAAAAA Wolf" {
		t.Errorf("colored = %v", rec.colored)
	}
	if len(rec.plain) != 1 || rec.plain[0] != "Ghost" {
		t.Errorf("plain = %v", rec.plain)
	}

	var out bytes.Buffer
	AnnounceColor(NewLine(strings.NewReader(""), &out), "Fox", "#FF9933")
	if out.String() != "Fox\n" {
		t.Errorf("line console output = %q", out.String())
	}
}
