package header

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Boundary tokens delimiting the managed block. The begin token doubles as
// the presence marker: a file contains the block iff it contains this token.
const (
	beginToken = "<!-- speculate:managed:begin -->"
	endToken   = "<!-- speculate:managed:end -->"
)

// Marker identifies a managed header block.
const Marker = beginToken

// Block is the text prepended to managed files. Uninstall removes the whole
// begin..end span, so the block must never hold user content.
const Block = beginToken + `
# Speculate Documentation Scaffold

This project keeps its conventions, architecture notes, and agent rules
under docs/. Read docs/development.md before making changes, and treat
docs/ as the source of truth for project decisions.

Linked agent rules live in .cursor/rules/ and are regenerated on every
` + "`speculate install`" + `; edit the originals in docs/general/agent-rules/.
` + endToken

// Ensure makes sure path carries the managed block. A missing file is
// created containing exactly the block; a file that already has the marker
// is left byte-for-byte unchanged; otherwise the block is prepended,
// separated from the existing content by a blank line.
func Ensure(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(Block+"\n"), 0644); err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.Contains(string(data), Marker) {
		return nil
	}

	merged := Block + "\n\n" + string(data)
	if err := os.WriteFile(path, []byte(merged), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Remove strips the managed block from path, wherever it sits, preserving
// surrounding user content. A missing file or absent marker is a no-op.
// When nothing but whitespace remains the file is deleted.
func Remove(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	if !strings.Contains(content, Marker) {
		return nil
	}

	stripped, ok := strip(content)
	if !ok {
		// Begin token without a matching end token: not a well-formed
		// block, leave the file alone.
		return nil
	}

	if strings.TrimSpace(stripped) == "" {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(stripped), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// strip splices the begin..end span out of content and rejoins the
// surrounding text with a single blank line. It reports false when the
// boundary tokens do not form a well-ordered pair.
func strip(content string) (string, bool) {
	start := strings.Index(content, beginToken)
	end := strings.Index(content, endToken)
	if start < 0 || end < start {
		return content, false
	}
	end += len(endToken)

	before := strings.TrimRight(content[:start], "\n")
	after := strings.TrimLeft(content[end:], "\n")

	switch {
	case before == "":
		return after, true
	case after == "":
		return before + "\n", true
	default:
		return before + "\n\n" + after, true
	}
}
