// Package testutil provides shared test infrastructure for the page replacement engine.
// It holds the golden dataset types and assertion helpers used across sim/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one reference string with its expected outcome.
type GoldenTestCase struct {
	Name        string `json:"name"`
	References  []int  `json:"references"`
	Frames      int    `json:"frames"`
	Policy      string `json:"policy"`
	Faults      int    `json:"faults"`
	Hits        int    `json:"hits"`
	FinalFrames []int  `json:"final_frames"` // nil when not checked
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}
	return &dataset
}

// AssertFramesEqual compares slot contents, reporting the first differing slot.
func AssertFramesEqual(t *testing.T, name string, want, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: got %d frames %v, want %d frames %v", name, len(got), got, len(want), want)
		return
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("%s: slot %d holds %d, want %d (got %v, want %v)", name, i, got[i], want[i], got, want)
			return
		}
	}
}
