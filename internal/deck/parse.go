package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads card values from r in order. Values may be separated by any
// mix of whitespace and commas, so the output of Deck.String parses back to
// the same deck. Reading stops at the first token that is not an integer;
// everything after it is ignored.
func Parse(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(scanTokens)

	var values []int
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			break
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	return values, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]int, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile parses the deck file at path.
func ReadFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening deck file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func isSeparator(b byte) bool {
	switch b {
	case ',', ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// scanTokens is bufio.ScanWords restricted to ASCII whitespace, with commas
// treated as spaces.
func scanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
