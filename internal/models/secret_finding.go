package models

import "strconv"

// SecretFinding represents a verified secret reported by the external detector.
type SecretFinding struct {
	DetectorName string `json:"detector_name"`
	DecoderName  string `json:"decoder_name,omitempty"`
	SecretText   string `json:"-"` // raw matched text, never serialised
	Redacted     string `json:"redacted,omitempty"`
	Verified     bool   `json:"verified"`
	FilePath     string `json:"file_path"`
	LineNumber   int    `json:"line_number,omitempty"`
	ScanTarget   string `json:"scan_target"` // the staged file the detector was run against
	Identity     string `json:"identity,omitempty"`
}

// Location returns "file:line", or just the file when the line is unknown.
func (f SecretFinding) Location() string {
	file := f.FilePath
	if file == "" {
		file = f.ScanTarget
	}
	if file == "" {
		file = "Unknown"
	}
	if f.LineNumber > 0 {
		return file + ":" + strconv.Itoa(f.LineNumber)
	}
	return file
}

// DisplayDetector returns the detector name or "Unknown".
func (f SecretFinding) DisplayDetector() string {
	if f.DetectorName == "" {
		return "Unknown"
	}
	return f.DetectorName
}
