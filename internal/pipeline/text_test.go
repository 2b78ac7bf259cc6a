package pipeline

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "hello world", "hello world"},
		{"tags stripped", "<p>본문 <b>강조</b></p>", "본문 강조"},
		{"non-greedy per tag", "<a href=\"x\">링크</a> 끝", "링크 끝"},
		{"whitespace collapsed", "  여러   칸\t\n공백  ", "여러 칸 공백"},
		{"only tags yields empty", "<br/><hr>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.in); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := fingerprint("기사 제목", "https://example.com/a")
	b := fingerprint("기사 제목", "https://example.com/a")
	if a != b {
		t.Errorf("same inputs gave different ids: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("id length = %d, want 16", len(a))
	}

	c := fingerprint("기사 제목", "https://example.com/b")
	if a == c {
		t.Errorf("different URLs gave identical id %s", a)
	}
	d := fingerprint("다른 제목", "https://example.com/a")
	if a == d {
		t.Errorf("different titles gave identical id %s", a)
	}
}
