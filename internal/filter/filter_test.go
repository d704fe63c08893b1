package filter

import (
	"reflect"
	"testing"

	"github.com/flashtools/flashlog/internal/record"
)

func rec(line string) record.Record {
	return record.Parse(line)
}

func TestShouldExclude(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		excluded []string
		want     bool
	}{
		{
			name:     "empty exclusion set excludes nothing",
			line:     "14:23:45|Downloadovor fetching",
			excluded: nil,
			want:     false,
		},
		{
			name:     "sender substring match",
			line:     "14:23:45|Downloadovor fetching manifest",
			excluded: []string{"download"},
			want:     true,
		},
		{
			name:     "match elsewhere in the line",
			line:     "14:23:45| Nanovor DownloadManager syncing",
			excluded: []string{"downloadmanager"},
			want:     true,
		},
		{
			name:     "no match",
			line:     "14:23:45|Combat round started",
			excluded: []string{"download", "downloadovor", "downloadmanager"},
			want:     false,
		},
		{
			name:     "case-insensitive",
			line:     "14:23:45|DOWNLOADOVOR busy",
			excluded: []string{"downloadovor"},
			want:     true,
		},
		{
			name:     "empty sender never excluded",
			line:     "",
			excluded: []string{"download"},
			want:     false,
		},
		{
			name:     "empty sender never excluded even with broad entries",
			line:     "   ",
			excluded: []string{"a", "b", "c"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldExclude(rec(tt.line), tt.excluded); got != tt.want {
				t.Errorf("ShouldExclude(%q, %v) = %v, want %v", tt.line, tt.excluded, got, tt.want)
			}
		})
	}
}

func TestMatchesKeyword(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		keyword string
		want    bool
	}{
		{
			name:    "empty keyword matches everything",
			line:    "anything at all",
			keyword: "",
			want:    true,
		},
		{
			name:    "empty keyword matches empty line",
			line:    "",
			keyword: "",
			want:    true,
		},
		{
			name:    "substring match",
			line:    "14:23:46| Nanovor 1 started attack",
			keyword: "attack",
			want:    true,
		},
		{
			name:    "case-insensitive match",
			line:    "14:23:46| Nanovor 1 started ATTACK",
			keyword: "attack",
			want:    true,
		},
		{
			name:    "no match",
			line:    "14:23:47| idle",
			keyword: "attack",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesKeyword(rec(tt.line), tt.keyword); got != tt.want {
				t.Errorf("MatchesKeyword(%q, %q) = %v, want %v", tt.line, tt.keyword, got, tt.want)
			}
		})
	}
}

func TestExclusionTakesPrecedence(t *testing.T) {
	// The line matches the keyword but its sender is excluded; it must
	// stay hidden.
	r := rec("14:23:45|Downloadovor attack manifest")
	if Displayable(r, "attack", []string{"download"}) {
		t.Fatal("Displayable = true, want exclusion to win over keyword match")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := New(DefaultExcludedSenders)

	if cfg.Keyword() != "" {
		t.Fatalf("Keyword() = %q, want empty at startup", cfg.Keyword())
	}
	if !cfg.Displayable(rec("14:23:45| ERROR Combat system error occurred")) {
		t.Fatal("error line should be displayable with default config")
	}
	if cfg.Displayable(rec("14:23:45| Nanovor DownloadManager syncing")) {
		t.Fatal("download manager line should be hidden by default exclusions")
	}
}

func TestConfigSetters(t *testing.T) {
	cfg := New(nil)

	cfg.SetKeyword("  attack  ")
	if got := cfg.Keyword(); got != "attack" {
		t.Fatalf("Keyword() = %q, want trimmed value", got)
	}

	cfg.SetExcludedSenders([]string{" Download ", "", "  ", "Combat"})
	want := []string{"download", "combat"}
	if got := cfg.ExcludedSenders(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ExcludedSenders() = %v, want %v", got, want)
	}

	// Returned list is a copy.
	got := cfg.ExcludedSenders()
	got[0] = "mutated"
	if cfg.ExcludedSenders()[0] != "download" {
		t.Fatal("ExcludedSenders should return a copy")
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma separated",
			raw:  "download, Downloadovor ,downloadmanager",
			want: []string{"download", "downloadovor", "downloadmanager"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "only separators",
			raw:  " , ,, ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseList(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
