package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ecmwf/metkit-sub000/mars2grib"
)

// runSuite runs every case in suite against out, returning the number of
// cases that failed.
func runSuite(out io.Writer, suite *testSuite) int {
	failures := 0
	for _, tc := range suite.Cases {
		if err := runCase(out, tc); err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", tc.Name, err)
			failures++
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", tc.Name)
	}
	return failures
}

func runCase(out io.Writer, tc testCase) error {
	enc := mars2grib.New(tc.Options.resolve())

	hl, mars, aux, err := enc.ResolveLayout(tc.marsDict(), tc.auxDict())
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	var mismatches []string
	for key, want := range tc.Expect {
		section, err := parseSectionKey(key)
		if err != nil {
			return err
		}
		got := hl.Sections[section].TemplateNumber
		if got != want {
			mismatches = append(mismatches, fmt.Sprintf("%s: want template %d, got %d", key, want, got))
		}
	}
	if len(mismatches) > 0 {
		return fmt.Errorf("%s", strings.Join(mismatches, "; "))
	}

	if len(tc.Values) > 0 {
		if _, err := enc.Encode(mars, aux, tc.Values); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	}
	return nil
}

func parseSectionKey(key string) (int, error) {
	n, ok := strings.CutPrefix(key, "section")
	if !ok {
		return 0, fmt.Errorf("expect key %q must look like \"sectionN\"", key)
	}
	section, err := strconv.Atoi(n)
	if err != nil {
		return 0, fmt.Errorf("expect key %q must look like \"sectionN\": %w", key, err)
	}
	return section, nil
}
