package utils

import "testing"

func TestCleanCell(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  SpaceX  ", "SpaceX"},
		{"Kennedy   Space\tCenter", "Kennedy Space Center"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := CleanCell(tc.in); got != tc.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Company Name", "company_name"},
		{" Mission Status ", "mission_status"},
		{"launch-cost", "launch_cost"},
		{"DATE", "date"},
	}

	for _, tc := range cases {
		if got := NormalizeHeader(tc.in); got != tc.want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("abc", 5); got != "abc  " {
		t.Errorf("PadRight(abc, 5) = %q", got)
	}

	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight must not truncate, got %q", got)
	}

	// Wide runes count double.
	if got := PadRight("中国", 6); got != "中国  " {
		t.Errorf("PadRight(中国, 6) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("International Launch Services", 13); got != "International..." {
		t.Errorf("Truncate = %q", got)
	}

	if got := Truncate("SpaceX", 10); got != "SpaceX" {
		t.Errorf("Truncate must leave short strings alone, got %q", got)
	}
}
