// Package allowlist loads acknowledged finding identities and filters findings against them.
package allowlist

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Entry is one acknowledged finding. Only Hash is used for matching; the rest
// is documentation for reviewers.
type Entry struct {
	Hash        string `json:"hash"`
	Description string `json:"description,omitempty"`
	Detector    string `json:"detector,omitempty"`
	File        string `json:"file,omitempty"`
	AddedBy     string `json:"added_by,omitempty"`
}

// Document is the on-disk allowlist shape: {"allowlist": [{"hash": "..."}]}.
// Entries are decoded one at a time so a single bad entry does not void the rest.
type Document struct {
	Allowlist []json.RawMessage `json:"allowlist"`
}

// Set holds normalized finding identities.
type Set map[string]struct{}

// Contains reports whether identity is allowlisted.
func (s Set) Contains(identity string) bool {
	_, ok := s[NormalizeHash(identity)]
	return ok
}

// Load reads <root>/<fileName>. A missing, unreadable, or malformed file yields
// an empty set; nothing is pre-approved in that case.
func Load(root, fileName string, logger zerolog.Logger) Set {
	log := logger.With().Str("component", "Allowlist").Logger()
	path := filepath.Join(root, fileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("No allowlist file")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("Could not read allowlist, ignoring it")
		}
		return Set{}
	}

	set, err := Parse(data, log)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Malformed allowlist, ignoring it")
		return Set{}
	}

	log.Debug().Str("path", path).Int("entries", len(set)).Msg("Allowlist loaded")
	return set
}

// Parse decodes an allowlist document. Only a document that fails to decode as a
// whole is an error. Entries that do not decode, or carry no hash, are skipped.
func Parse(data []byte, logger zerolog.Logger) (Set, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	set := make(Set, len(doc.Allowlist))
	for i, raw := range doc.Allowlist {
		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			logger.Warn().Err(err).Int("index", i).Msg("Skipping malformed allowlist entry")
			continue
		}
		hash := NormalizeHash(entry.Hash)
		if hash == "" {
			continue
		}
		set[hash] = struct{}{}
	}
	return set, nil
}
