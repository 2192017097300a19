// Package report presents the outcome of a seeding run.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

type Summary struct {
	Elapsed    time.Duration
	Successes  int
	Failures   int
	Duplicates int
	Batches    int
	ByCategory map[string]int // successful submissions per category
}

func (s Summary) Total() int {
	return s.Successes + s.Failures
}

// SuccessRate is in percent. A run that processed nothing has a rate of 0.
func (s Summary) SuccessRate() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Total()) * 100
}

// Categories returns the category names in alphabetical order.
func (s Summary) Categories() []string {
	names := make([]string, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

func Print(w io.Writer, s Summary) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Completed in %.2f seconds\n", s.Elapsed.Seconds())
	fmt.Fprintf(w, "Total dishes added: %d\n", s.Successes)
	fmt.Fprintf(w, "Total failures: %d\n", s.Failures)
	fmt.Fprintf(w, "Duplicates injected: %d\n", s.Duplicates)
	fmt.Fprintf(w, "Success rate: %.1f%%\n", s.SuccessRate())
	fmt.Fprintln(w, rule)
}
