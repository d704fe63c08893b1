package record

import (
	"testing"
	"time"
)

func TestExtractSender(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "stamped line",
			line: "14:23:45|Nanovor 1 started attack",
			want: "nanovor",
		},
		{
			name: "stamped line with leading space",
			line: "14:23:45| Nanovor DownloadManager syncing",
			want: "nanovor",
		},
		{
			name: "no pipe",
			line: "Downloadovor fetching manifest",
			want: "downloadovor",
		},
		{
			name: "empty line",
			line: "",
			want: "",
		},
		{
			name: "whitespace only",
			line: "   ",
			want: "",
		},
		{
			name: "pipe with nothing after it",
			line: "14:23:45|",
			want: "",
		},
		{
			name: "pipe with whitespace after it",
			line: "14:23:45|   ",
			want: "",
		},
		{
			name: "multiple pipes use the first",
			line: "14:23:45|Combat|extra detail",
			want: "combat|extra",
		},
		{
			name: "already lowercase",
			line: "14:23:45|downloadmanager idle",
			want: "downloadmanager",
		},
		{
			name: "leading error marker is skipped",
			line: "14:23:45| ERROR Combat system error occurred",
			want: "combat",
		},
		{
			name: "leading comment marker is skipped",
			line: "14:23:48| COMMENT done",
			want: "done",
		},
		{
			name: "marker alone leaves no sender",
			line: "14:23:45| ERROR ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSender(tt.line); got != tt.want {
				t.Errorf("ExtractSender(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Kind
	}{
		{
			name: "error marker",
			line: "14:23:45| ERROR Combat system error occurred",
			want: KindError,
		},
		{
			name: "comment marker",
			line: "14:23:48| COMMENT done",
			want: KindComment,
		},
		{
			name: "no marker",
			line: "14:23:47| idle",
			want: KindNone,
		},
		{
			name: "empty line",
			line: "",
			want: KindNone,
		},
		{
			name: "marker needs surrounding spaces",
			line: "14:23:45|ERROR: something",
			want: KindNone,
		},
		{
			name: "marker as prefix of another word",
			line: "14:23:45| ERRORS were reported",
			want: KindNone,
		},
		{
			name: "error before comment wins",
			line: "x ERROR y COMMENT z",
			want: KindError,
		},
		{
			name: "comment before error wins",
			line: "x COMMENT y ERROR z",
			want: KindComment,
		},
		{
			name: "marker later in line still counts",
			line: "14:23:45|Nanovor reported ERROR in combat",
			want: KindError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectKind(tt.line); got != tt.want {
				t.Errorf("detectKind(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseNeverFails(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"14:23:45| ERROR Combat system error occurred",
		"garbage \x00\x01\x02 bytes",
		"no structure at all",
		"|||",
	}

	for _, line := range lines {
		before := time.Now()
		rec := Parse(line)
		if rec.Raw != line {
			t.Errorf("Parse(%q).Raw = %q, want input unchanged", line, rec.Raw)
		}
		if rec.Time.Before(before.Add(-time.Second)) || rec.Time.After(time.Now().Add(time.Second)) {
			t.Errorf("Parse(%q).Time = %v, want receipt time", line, rec.Time)
		}
	}
}

func TestParseScenarioLine(t *testing.T) {
	rec := Parse("14:23:45| ERROR Combat system error occurred")
	if rec.Kind != KindError {
		t.Fatalf("Kind = %v, want KindError", rec.Kind)
	}
	if rec.Sender != "combat" {
		t.Fatalf("Sender = %q, want combat", rec.Sender)
	}
	if rec.Raw != "14:23:45| ERROR Combat system error occurred" {
		t.Fatalf("Raw = %q, want input unchanged", rec.Raw)
	}
}

func TestKindString(t *testing.T) {
	if got := KindError.String(); got != "ERROR" {
		t.Errorf("KindError.String() = %q, want ERROR", got)
	}
	if got := KindComment.String(); got != "COMMENT" {
		t.Errorf("KindComment.String() = %q, want COMMENT", got)
	}
	if got := KindNone.String(); got != "" {
		t.Errorf("KindNone.String() = %q, want empty", got)
	}
}
