package deck

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"spaces", "1 2 3", []int{1, 2, 3}},
		{"lines", "4\n5\r\n6\n", []int{4, 5, 6}},
		{"commas", "7,8, 9", []int{7, 8, 9}},
		{"stops at first non-integer", "1 2 x 3", []int{1, 2}},
		{"signs", "+4 -2", []int{4, -2}},
		{"empty", "  \n ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() diff:\n%s", diff)
			}
		})
	}
}

func TestParse_StringRoundTrip(t *testing.T) {
	d := New(Ordered())
	d.Advance()
	d.Advance()

	values, err := ParseString(d.String())
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if !New(values).Equal(d) {
		t.Errorf("parsed deck %v does not match %s", values, d)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	lines := make([]string, 0, Size)
	for _, v := range Ordered() {
		lines = append(lines, strconv.Itoa(v))
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600); err != nil {
		t.Fatal(err)
	}

	values, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if diff := cmp.Diff(Ordered(), values); diff != "" {
		t.Errorf("ReadFile() diff:\n%s", diff)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected ReadFile() to fail for a missing file")
	}
}
