// Package metadata attaches and verifies provenance blocks on generated reports.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// TagStart is the start of the provenance block.
	TagStart = "<!-- ELEVRON_META_START"
	// TagEnd is the end of the provenance block.
	TagEnd = "ELEVRON_META_END -->"
)

// Provenance verification errors.
var (
	ErrNoBlock      = errors.New("no provenance block found")
	ErrNoHash       = errors.New("no hash found in provenance block")
	ErrHashMismatch = errors.New("hash mismatch")
)

// Provenance describes how a generated report was produced.
type Provenance struct {
	GeneratedAt time.Time
	Source      string
	Records     int
	Hash        string
}

// blockRegex matches the entire provenance block including tags.
var blockRegex = regexp.MustCompile(`(?s)<!--\s*ELEVRON_META_START\s*\n(.*?)\n\s*ELEVRON_META_END\s*-->`)

// Extract removes the provenance block from content and returns both the parsed
// block and the cleaned content. The cleaned content is what gets hashed.
func Extract(content string) (*Provenance, string) {
	match := blockRegex.FindStringSubmatch(content)
	clean := blockRegex.ReplaceAllString(content, "")
	clean = strings.TrimRight(clean, "\n")

	if len(match) < 2 {
		return nil, clean
	}

	prov := &Provenance{}

	for line := range strings.SplitSeq(match[1], "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "GENERATED_AT":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				prov.GeneratedAt = t
			}
		case "SOURCE":
			prov.Source = val
		case "RECORDS":
			if n, err := strconv.Atoi(val); err == nil {
				prov.Records = n
			}
		case "HASH":
			prov.Hash = val
		}
	}

	return prov, clean
}

// CalculateHash computes the SHA-256 hash of the content, excluding any
// existing provenance block.
func CalculateHash(content string) string {
	_, clean := Extract(content)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign appends a fresh provenance block describing the source dataset and
// record count, replacing any existing block.
func Sign(content, source string, records int) string {
	_, clean := Extract(content)
	hash := CalculateHash(clean)

	now := time.Now().UTC().Format(time.RFC3339)

	block := fmt.Sprintf("\n\n%s\nGENERATED_AT: %s\nSOURCE: %s\nRECORDS: %d\nHASH: %s\n%s",
		TagStart, now, source, records, hash, TagEnd)

	return clean + block
}

// Verify checks that the content matches the hash in its provenance block.
func Verify(content string) (bool, error) {
	prov, clean := Extract(content)
	if prov == nil {
		return false, ErrNoBlock
	}

	if prov.Hash == "" {
		return false, ErrNoHash
	}

	calculated := CalculateHash(clean)
	if calculated != prov.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, prov.Hash, calculated)
	}

	return true, nil
}
