package numtext

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase is one Alpha2Digit fixture. Threshold 0 in the file means
// DefaultThreshold.
type goldenCase struct {
	Name      string  `json:"name"`
	Lang      string  `json:"lang"`
	Input     string  `json:"input"`
	Threshold float64 `json:"threshold,omitempty"`
	Want      string  `json:"want"`
}

const goldenPath = "../data/golden/alpha2digit.json"

func (tc goldenCase) threshold() float64 {
	if tc.Threshold == 0 {
		return DefaultThreshold
	}
	return tc.Threshold
}

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("golden file not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			got, err := Alpha2Digit(tc.Input, tc.Lang, tc.threshold())
			if err != nil {
				t.Fatalf("Alpha2Digit(%q, %q) error: %v", tc.Input, tc.Lang, err)
			}
			if got != tc.Want {
				t.Errorf("Alpha2Digit(%q, %q)\n got:  %q\n want: %q", tc.Input, tc.Lang, got, tc.Want)
			}

			again, _ := Alpha2Digit(got, tc.Lang, tc.threshold())
			if again != got {
				t.Errorf("second pass changed %q to %q", got, again)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		out, err := Alpha2Digit(tc.Input, tc.Lang, tc.threshold())
		if err != nil {
			t.Fatalf("Alpha2Digit(%q, %q) error: %v", tc.Input, tc.Lang, err)
		}
		tc.Want = out
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/alpha2digit.json")
}
