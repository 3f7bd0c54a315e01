// Package srt scans SRT subtitle streams for timestamp lines and aggregates
// per-segment speech timing.
//
// Only the timing line of each block is consumed. A timing line contains
//
//	HH:MM:SS,mmm --> HH:MM:SS,mmm
//
// anywhere on the line, with exactly two digits for hours, minutes and
// seconds, three for milliseconds, and a single space on each side of the
// arrow. Index lines, caption text and blank lines are ignored.
package srt

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var timestampRe = regexp.MustCompile(
	`([0-9]{2}):([0-9]{2}):([0-9]{2}),([0-9]{3}) --> ([0-9]{2}):([0-9]{2}):([0-9]{2}),([0-9]{3})`,
)

// Segment is one timestamp-delimited speech interval, in seconds.
type Segment struct {
	Start float64
	End   float64
}

// Duration is End - Start. It is negative for malformed blocks.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Stats aggregates the segments of one subtitle stream.
type Stats struct {
	Segments           uint
	SpeechDuration     float64
	AvgSegmentDuration float64
}

// Add accumulates a segment in input order. Negative durations are summed
// as-is; the total is not clamped. A zero Stats has a zero average.
func (st *Stats) Add(seg Segment) {
	st.Segments++
	st.SpeechDuration += seg.Duration()
	st.AvgSegmentDuration = st.SpeechDuration / float64(st.Segments)
}

// ParseTimestampLine returns the first timing range found on line.
func ParseTimestampLine(line string) (Segment, bool) {
	m := timestampRe.FindStringSubmatch(line)
	if m == nil {
		return Segment{}, false
	}
	return Segment{
		Start: toSeconds(m[1], m[2], m[3], m[4]),
		End:   toSeconds(m[5], m[6], m[7], m[8]),
	}, true
}

// Scan reads r line by line and aggregates every timing line. Lines may be
// arbitrarily long; both LF and CRLF endings are accepted.
func Scan(r io.Reader) (Stats, error) {
	var st Stats
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if seg, ok := ParseTimestampLine(strings.TrimRight(line, "\r\n")); ok {
				st.Add(seg)
			}
		}
		if errors.Is(err, io.EOF) {
			return st, nil
		}
		if err != nil {
			return st, err
		}
	}
}

func toSeconds(h, m, s, ms string) float64 {
	return atof(h)*3600 + atof(m)*60 + atof(s) + atof(ms)/1000
}

// atof only sees regexp-validated digit runs.
func atof(digits string) float64 {
	n, _ := strconv.Atoi(digits)
	return float64(n)
}
