// Package checker loads selector files, validates every expression in them
// and renders the normalized form of the ones that pass.
package checker

import (
	"fmt"
	"os"

	"github.com/Alexkhokhlow/core-go-101/internal/lexer"
	"github.com/Alexkhokhlow/core-go-101/internal/parser"
)

type Report struct {
	File string

	// Selectors holds the normalized text of every valid expression, in
	// file order.
	Selectors []string

	// Problems holds situated errors for everything that didn't parse.
	Problems []error
}

func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

func Check(path string) (*Report, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return CheckContents(path, contents), nil
}

func CheckContents(name string, contents []byte) *Report {
	r := Report{File: name}

	tks, err := lexer.New(contents, name).Collect()
	if err != nil {
		r.Problems = append(r.Problems, err)
		return &r
	}

	f, errs := parser.Parse(tks)
	for _, e := range errs {
		r.Problems = append(r.Problems, e)
	}

	for _, entry := range f.Selectors {
		text, err := entry.Sel.Build()
		if err != nil {
			continue
		}

		r.Selectors = append(r.Selectors, text)
	}

	return &r
}
