package checker

import (
	"errors"
	"testing"

	"github.com/Alexkhokhlow/core-go-101/selector"
)

func TestCheckContents(t *testing.T) {
	src := `// navigation
nav>ul  >  li
a#home.menu-item[href]:visited::before

p:focus + img[alt]
`

	r := CheckContents("nav.sel", []byte(src))

	if !r.OK() {
		t.Fatalf("unexpected problems: %v", r.Problems)
	}

	want := []string{
		"nav > ul > li",
		"a#home.menu-item[href]:visited::before",
		"p:focus + img[alt]",
	}

	if len(r.Selectors) != len(want) {
		t.Fatalf("expected %d selectors, got %d: %v", len(want), len(r.Selectors), r.Selectors)
	}

	for i := range want {
		if r.Selectors[i] != want[i] {
			t.Fatalf("selector %d: expected %q, got %q", i, want[i], r.Selectors[i])
		}
	}
}

func TestCheckContentsReportsBadLines(t *testing.T) {
	src := ".wide#main\ndiv\nspan::after::before\n"

	r := CheckContents("bad.sel", []byte(src))

	if len(r.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %d: %v", len(r.Problems), r.Problems)
	}

	var ord *selector.OrderError
	if !errors.As(r.Problems[0], &ord) {
		t.Fatalf("expected an OrderError, got %v", r.Problems[0])
	}

	var dup *selector.DuplicateError
	if !errors.As(r.Problems[1], &dup) {
		t.Fatalf("expected a DuplicateError, got %v", r.Problems[1])
	}

	if len(r.Selectors) != 1 || r.Selectors[0] != "div" {
		t.Fatalf("expected the good line to survive, got %v", r.Selectors)
	}
}

func TestCheckContentsLexerError(t *testing.T) {
	r := CheckContents("broken.sel", []byte("div[unclosed\n"))

	if r.OK() {
		t.Fatal("expected a problem")
	}
	if len(r.Selectors) != 0 {
		t.Fatalf("expected no selectors, got %v", r.Selectors)
	}
}
