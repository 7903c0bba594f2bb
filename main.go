package main

import (
	goerrors "errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Alexkhokhlow/core-go-101/internal/checker"
	"github.com/alecthomas/kingpin/v2"
)

var (
	write = kingpin.Flag("write", "Rewrite each file with its normalized selectors").Short('w').Bool()
	watch = kingpin.Flag("watch", "Watch files for changes and recheck automatically").Bool()
	files = kingpin.Arg("files", "List of selector files to check").Required().ExistingFiles()
)

func main() {
	kingpin.Parse()

	if *watch {
		err := watchFiles()
		if err != nil {
			kingpin.Fatalf("failed to watch files: %s", err)
		}
		return
	}

	ok, err := checkAll()
	if err != nil {
		kingpin.Fatalf("failed to check files: %s", err)
	}
	if !ok {
		os.Exit(1)
	}
}

func checkAll() (ok bool, err error) {
	ok = true

	for _, fname := range *files {
		fileOK, err := checkFile(fname, *write)
		if err != nil {
			return false, fmt.Errorf("check file %q: %w", fname, err)
		}

		ok = ok && fileOK
	}

	return ok, nil
}

// checkFile reports problems in one file. With rewrite set, a clean file is
// replaced by its normalized selectors.
func checkFile(fname string, rewrite bool) (ok bool, err error) {
	report, err := checker.Check(fname)
	if err != nil {
		return false, err
	}

	for _, problem := range report.Problems {
		printProblem(problem)
	}

	if !report.OK() {
		return false, nil
	}

	if rewrite {
		contents := strings.Join(report.Selectors, "\n") + "\n"

		if err := os.WriteFile(fname, []byte(contents), 0o644); err != nil {
			return false, fmt.Errorf("write normalized file: %w", err)
		}
	} else {
		for _, sel := range report.Selectors {
			fmt.Println(sel)
		}
	}

	return true, nil
}

func printProblem(err error) {
	var sit SituatedErr

	if goerrors.As(err, &sit) {
		loc := sit.At()
		fmt.Fprintf(os.Stderr, "%s: %s\n", &loc, sit.Unwrap())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
}

func watchFiles() error {
	watcher, err := NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	for _, f := range *files {
		err = watcher.WatchFile(f)
		if err != nil {
			return fmt.Errorf("watch file %q: %w", f, err)
		}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	log.Println("watching files for changes...")

	<-ch
	return nil
}
