// Package record defines the parsed log record and the line parser that
// produces it from raw bridge output.
package record

import (
	"strings"
	"time"
)

// Kind classifies a log line by the marker token embedded in it.
type Kind int

const (
	KindNone Kind = iota
	KindError
	KindComment
)

// String returns the marker name, or "" for KindNone.
func (k Kind) String() string {
	switch k {
	case KindError:
		return "ERROR"
	case KindComment:
		return "COMMENT"
	default:
		return ""
	}
}

// The bridge surrounds the type token with single spaces, e.g.
// "14:23:45| ERROR Combat system error occurred".
const (
	errorMarker   = " ERROR "
	commentMarker = " COMMENT "
)

// Record is one parsed log line. Records are immutable after Parse;
// downstream stages only decide whether to show them.
type Record struct {
	// Time is the wall-clock moment of receipt, not parsed from the line.
	Time time.Time

	// Kind is inferred from the first ERROR/COMMENT marker in the line.
	Kind Kind

	// Sender is the lowercased subsystem token extracted from the line,
	// empty when no token is recognizable.
	Sender string

	// Raw is the full line as received, terminators stripped.
	Raw string
}

// Stamp formats the receipt time as HH:MM:SS.
func (r Record) Stamp() string {
	return r.Time.Format("15:04:05")
}

// Parse turns one received line (line terminators already stripped) into a
// Record. It never fails: unrecognizable content degrades to a record with
// an empty sender and KindNone.
func Parse(line string) Record {
	return Record{
		Time:   time.Now(),
		Kind:   detectKind(line),
		Sender: ExtractSender(line),
		Raw:    line,
	}
}

// ExtractSender returns the lowercased first whitespace-delimited token of
// the message body: the text after the first "|" when one is present,
// otherwise the whole line, with any leading ERROR/COMMENT marker skipped.
// The bridge prefixes lines with a clock stamp ("14:23:45|Nanovor 1 ..."),
// so the token after the pipe is typically the originating subsystem.
// Best effort: an empty result is not an error.
func ExtractSender(line string) string {
	body := line
	if i := strings.IndexByte(line, '|'); i >= 0 {
		body = line[i+1:]
	}
	switch {
	case strings.HasPrefix(body, errorMarker):
		body = body[len(errorMarker):]
	case strings.HasPrefix(body, commentMarker):
		body = body[len(commentMarker):]
	}
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// detectKind scans for the ERROR and COMMENT markers; the one occurring
// earliest in the line wins.
func detectKind(line string) Kind {
	errIdx := strings.Index(line, errorMarker)
	comIdx := strings.Index(line, commentMarker)
	switch {
	case errIdx < 0 && comIdx < 0:
		return KindNone
	case comIdx < 0 || (errIdx >= 0 && errIdx < comIdx):
		return KindError
	default:
		return KindComment
	}
}
