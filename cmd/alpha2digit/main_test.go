package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/allo-media/text2num/lang"
)

func TestRunStdin(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{"english", []string{"-lang", "en"}, "I paid twenty five dollars.\n", "I paid 25 dollars.\n"},
		{"french", []string{"-lang", "fr"}, "J'ai vingt et un ans.", "J'ai 21 ans."},
		{"threshold", []string{"-lang", "en", "-threshold", "0"}, "one cat", "1 cat"},
		{"lines stay apart", []string{"-lang", "en"}, "twenty\nfive\n", "20\n5\n"},
		{"no numbers", []string{}, "hello world\n", "hello world\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, strings.NewReader(tt.in), &stdout, &stderr); code != 0 {
				t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("stdout = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	inputs := []string{
		"two hundred and five\n",
		"nothing here\n",
		"minus three point five degrees\n",
	}
	var paths []string
	for i, text := range inputs {
		p := filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(p, []byte(text), 0o600); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}

	var stdout, stderr bytes.Buffer
	args := append([]string{"-lang", "en", "-workers", "2", "-stats"}, paths...)
	if code := run(args, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	want := "205\nnothing here\n-3.5 degrees\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	for _, want := range []string{
		"a.txt: 1 numbers, 4 words, 1 sentences",
		"b.txt: 0 numbers, 2 words, 1 sentences",
		"c.txt: 1 numbers, 5 words, 1 sentences",
	} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr missing %q: %q", want, stderr.String())
		}
	}
}

func TestRunStdinStats(t *testing.T) {
	t.Parallel()
	in := "Twenty cats slept. Three dogs barked.\n\nThe end.\n"
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-lang", "en", "-stats"}, strings.NewReader(in), &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if got, want := stdout.String(), "20 cats slept. 3 dogs barked.\n\nThe end.\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if want := "stdin: 2 numbers, 8 words, 3 sentences\n"; stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unsupported language", []string{"-lang", "xx"}, "unsupported language"},
		{"bad workers", []string{"-workers", "0"}, "-workers must be positive"},
		{"missing file", []string{filepath.Join("no", "such", "file.txt")}, "file.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, strings.NewReader(""), &stdout, &stderr); code != 1 {
				t.Fatalf("run() = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.want)
			}
		})
	}
}

// Chunks are cut after newlines; a read size smaller than the input must not
// change the result.
func TestConvertSmallReads(t *testing.T) {
	t.Parallel()
	g, err := lang.Get("en")
	if err != nil {
		t.Fatal(err)
	}
	c := &converter{g: g, threshold: 3}
	in := "forty two\nninety-nine bottles\n"
	res := c.convert(&oneByteReader{s: in})
	if res.err != nil {
		t.Fatal(res.err)
	}
	if got, want := string(res.out), "42\n99 bottles\n"; got != want {
		t.Errorf("convert() = %q, want %q", got, want)
	}
}

type oneByteReader struct {
	s string
	i int
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if r.i >= len(r.s) {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.s[r.i]
	r.i++
	return 1, nil
}
