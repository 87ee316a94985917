package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the layout of the date inside a history marker.
const TimestampLayout = "2006_01_02 15_04_05"

// Match is the result of a successful marker extraction.
type Match struct {
	Timestamp     time.Time
	CanonicalName string
}

// Extractor recognizes file history names such as
// "report (2023_01_02 10_00_00 UTC).txt". It is safe for concurrent use.
type Extractor struct {
	marker *regexp.Regexp
	date   *regexp.Regexp
}

func NewExtractor() *Extractor {
	return &Extractor{
		marker: regexp.MustCompile(`\(\d{4}_\d{2}_\d{2} \d{2}_\d{2}_\d{2} UTC\)\.`),
		date:   regexp.MustCompile(`\d{4}_\d{2}_\d{2} \d{2}_\d{2}_\d{2}`),
	}
}

// Extract reports whether name carries a history marker. When it does, the
// timestamp of the last marker and the canonical name are returned. A marker
// whose digits do not form a valid date yields an error.
func (e *Extractor) Extract(name string) (Match, bool, error) {
	locs := e.marker.FindAllStringIndex(name, -1)
	if len(locs) == 0 {
		return Match{}, false, nil
	}

	last := locs[len(locs)-1]
	datePart := e.date.FindString(name[last[0]:last[1]])
	timestamp, err := time.Parse(TimestampLayout, datePart)
	if err != nil {
		return Match{}, true, fmt.Errorf("parse timestamp %q: %w", datePart, err)
	}

	return Match{
		Timestamp:     timestamp,
		CanonicalName: e.canonicalize(name),
	}, true, nil
}

// canonicalize drops every marker, trims the fragments between them and
// re-attaches the trailing extension segment.
func (e *Extractor) canonicalize(name string) string {
	parts := e.marker.Split(name, -1)
	ext := parts[len(parts)-1]

	var b strings.Builder
	for _, part := range parts[:len(parts)-1] {
		b.WriteString(strings.TrimSpace(part))
	}
	b.WriteByte('.')
	b.WriteString(ext)
	return b.String()
}
