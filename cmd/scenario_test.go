package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/refstring"
	"github.com/inference-sim/pagesim/sim/workload"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioFile_Valid(t *testing.T) {
	path := writeTempYAML(t, `
max_frames: 8
scenarios:
  - name: a
    references: "1 2 3"
    frames: 2
    policies: [lru]
  - name: b
    workload:
      pattern: loop
      length: 6
      working_set: 3
    frames: 2
`)
	file, err := LoadScenarioFile(path)
	require.NoError(t, err)
	require.NotNil(t, file.MaxFrames)
	assert.Equal(t, 8, *file.MaxFrames)
	require.Len(t, file.Scenarios, 2)
	assert.Equal(t, "1 2 3", file.Scenarios[0].References)
	require.NotNil(t, file.Scenarios[1].Workload)
	assert.Equal(t, workload.Loop, file.Scenarios[1].Workload.Pattern)
}

func TestLoadScenarioFile_UnknownFieldRejected(t *testing.T) {
	// GIVEN a typo in a field name
	path := writeTempYAML(t, `
scenarios:
  - name: a
    refrences: "1 2 3"
    frames: 2
`)
	// THEN strict parsing fails
	_, err := LoadScenarioFile(path)
	assert.Error(t, err)
}

func TestLoadScenarioFile_NoScenarios(t *testing.T) {
	path := writeTempYAML(t, "max_frames: 4\n")
	_, err := LoadScenarioFile(path)
	assert.Error(t, err)
}

func TestLoadScenarioFile_Missing(t *testing.T) {
	_, err := LoadScenarioFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenarioFile_SampleFile(t *testing.T) {
	path := "../scenarios.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("scenarios.yaml not found, skipping")
	}
	file, err := LoadScenarioFile(path)
	require.NoError(t, err)
	for _, sc := range file.Scenarios {
		_, err := sc.Resolve(file.FrameLimit(10, false))
		assert.NoError(t, err, "scenario %q", sc.Name)
	}
}

func TestScenario_Resolve(t *testing.T) {
	resolved, err := Scenario{Name: "x", References: "7, 0 1", Frames: 3}.Resolve(10)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 0, 1}, resolved.References)
	assert.Equal(t, 3, resolved.Frames)
	assert.Equal(t, sim.AllPolicies(), resolved.Policies, "no policies means all")
}

func TestScenario_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantIs   error
	}{
		{"malformed reference", Scenario{Name: "m", References: "1 x", Frames: 2}, refstring.ErrMalformedReference},
		{"zero frames", Scenario{Name: "z", References: "1", Frames: 0}, refstring.ErrInvalidCapacity},
		{"too many frames", Scenario{Name: "t", References: "1", Frames: 11}, refstring.ErrInvalidCapacity},
		{"unknown policy", Scenario{Name: "p", References: "1", Frames: 2, Policies: []string{"clock"}}, sim.ErrUnknownPolicy},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.scenario.Resolve(10)
			assert.ErrorIs(t, err, tc.wantIs)
			assert.Contains(t, err.Error(), tc.scenario.Name)
		})
	}
}

func TestScenario_Resolve_ReferencesAndWorkloadExclusive(t *testing.T) {
	_, err := Scenario{
		Name:       "both",
		References: "1 2",
		Workload:   &workload.Spec{Pattern: workload.Loop, Length: 2, WorkingSet: 2},
		Frames:     2,
	}.Resolve(0)
	assert.Error(t, err)
}

func TestScenario_Resolve_NoUpperBound(t *testing.T) {
	resolved, err := Scenario{Name: "big", References: "1", Frames: 64}.Resolve(0)
	require.NoError(t, err)
	assert.Equal(t, 64, resolved.Frames)
}

func TestScenarioFile_FrameLimit(t *testing.T) {
	// GIVEN a file that disables the frame limit explicitly
	path := writeTempYAML(t, `
max_frames: 0
scenarios:
  - name: big
    references: "1 2"
    frames: 64
`)
	file, err := LoadScenarioFile(path)
	require.NoError(t, err)

	// THEN max_frames: 0 is kept rather than replaced by the flag default
	limit := file.FrameLimit(10, false)
	assert.Equal(t, 0, limit)
	_, err = file.Scenarios[0].Resolve(limit)
	assert.NoError(t, err)

	// AND an explicit --max-frames still wins
	assert.Equal(t, 10, file.FrameLimit(10, true))
}

func TestScenarioFile_FrameLimit_UnsetUsesFlag(t *testing.T) {
	path := writeTempYAML(t, `
scenarios:
  - name: a
    references: "1"
    frames: 2
`)
	file, err := LoadScenarioFile(path)
	require.NoError(t, err)
	assert.Nil(t, file.MaxFrames)
	assert.Equal(t, 10, file.FrameLimit(10, false))
}

func TestLoadScenarioFile_NegativeMaxFrames(t *testing.T) {
	path := writeTempYAML(t, `
max_frames: -1
scenarios:
  - name: a
    references: "1"
    frames: 2
`)
	_, err := LoadScenarioFile(path)
	assert.Error(t, err)
}
