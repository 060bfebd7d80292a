package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed words.txt
var bundled []byte

// Entry is one line of a JSONL word list.
type Entry struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency,omitempty"`
}

type embedded struct{}

// Embedded returns the word list bundled into the binary.
func Embedded() Source { return embedded{} }

func (embedded) Load() ([]string, error) {
	return parseText(bytes.NewReader(bundled))
}

func (embedded) String() string { return "embedded" }

type file struct {
	path string
}

// File returns a source reading path. Files ending in .jsonl hold one JSON
// Entry per line; anything else is plain text with one word per line.
func File(path string) Source { return file{path: path} }

func (f file) Load() ([]string, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer fh.Close()

	if strings.HasSuffix(f.path, ".jsonl") {
		return parseJSONL(fh)
	}
	return parseText(fh)
}

func (f file) String() string { return "file:" + f.path }

// parseText reads one word per line, skipping blank lines and # comments.
func parseText(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	return words, nil
}

func parseJSONL(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Skip malformed entries
			continue
		}

		if w := strings.TrimSpace(entry.Word); w != "" {
			words = append(words, w)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}

	return words, nil
}
