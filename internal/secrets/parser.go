package secrets

import (
	"bufio"
	"bytes"
	"encoding/json"

	"github.com/aleister1102/secretgate/internal/models"
	"github.com/rs/zerolog"
)

// maxFindingLineSize bounds a single JSONL record.
const maxFindingLineSize = 16 * 1024 * 1024

// TruffleHogFindingV3 defines the structure for a single finding from TruffleHog v3 JSONL output.
// Unknown fields are ignored.
type TruffleHogFindingV3 struct {
	SourceMetadata struct {
		Data struct {
			Filesystem *struct {
				File string `json:"file"`
				Line int    `json:"line"`
			} `json:"Filesystem"`
			Git *struct {
				Commit string `json:"commit"`
				File   string `json:"file"`
				Line   int    `json:"line"`
			} `json:"Git"`
		} `json:"Data"`
	} `json:"SourceMetadata"`
	SourceName   string `json:"SourceName"`
	DetectorType int    `json:"DetectorType"`
	DetectorName string `json:"DetectorName"`
	DecoderName  string `json:"DecoderName"`
	Verified     bool   `json:"Verified"`
	Raw          string `json:"Raw"`
	Redacted     string `json:"Redacted"`
}

// toSecretFinding maps the detector record onto the domain model, attributing
// it to target when the record carries no file.
func (f *TruffleHogFindingV3) toSecretFinding(target string) models.SecretFinding {
	finding := models.SecretFinding{
		DetectorName: f.DetectorName,
		DecoderName:  f.DecoderName,
		SecretText:   f.Raw,
		Redacted:     f.Redacted,
		Verified:     f.Verified,
		ScanTarget:   target,
	}

	switch data := f.SourceMetadata.Data; {
	case data.Filesystem != nil:
		finding.FilePath = data.Filesystem.File
		finding.LineNumber = data.Filesystem.Line
	case data.Git != nil:
		finding.FilePath = data.Git.File
		finding.LineNumber = data.Git.Line
	}
	if finding.FilePath == "" {
		finding.FilePath = target
	}
	return finding
}

// ParseFindings decodes detector stdout. Every non-blank line is an independent
// JSON object; lines that do not decode are skipped.
func ParseFindings(output []byte, target string, logger zerolog.Logger) []models.SecretFinding {
	var findings []models.SecretFinding

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxFindingLineSize)
	lineNumberInOutput := 0
	for scanner.Scan() {
		lineNumberInOutput++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] != '{' {
			logger.Debug().Int("output_line", lineNumberInOutput).Str("target", target).Msg("Skipping non-object TruffleHog output line")
			continue
		}

		var thFinding TruffleHogFindingV3
		if err := json.Unmarshal(line, &thFinding); err != nil {
			logger.Warn().Err(err).Int("output_line", lineNumberInOutput).Str("target", target).Msg("Failed to unmarshal TruffleHog JSONL line")
			continue
		}
		findings = append(findings, thFinding.toSecretFinding(target))
	}

	if err := scanner.Err(); err != nil {
		// Keep what was decoded before the unreadable line.
		logger.Warn().Err(err).Str("target", target).Msg("Error reading TruffleHog stdout")
	}
	return findings
}
