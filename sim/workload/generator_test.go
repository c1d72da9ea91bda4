package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	spec := Spec{Pattern: Locality, Length: 200, Pages: 50, WorkingSet: 5, JumpProb: 0.05, Seed: 42}

	a, err := Generate(spec)
	require.NoError(t, err)
	b, err := Generate(spec)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(Spec{Pattern: Uniform, Length: 100, Pages: 1000, Seed: 1})
	require.NoError(t, err)
	b, err := Generate(Spec{Pattern: Uniform, Length: 100, Pages: 1000, Seed: 2})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerate_UniformInRange(t *testing.T) {
	refs, err := Generate(Spec{Pattern: Uniform, Length: 500, Pages: 7, Seed: 3})
	require.NoError(t, err)
	require.Len(t, refs, 500)
	for _, r := range refs {
		assert.GreaterOrEqual(t, r, 0)
		assert.Less(t, r, 7)
	}
}

func TestGenerate_LocalityStaysInsideWindowWithoutJumps(t *testing.T) {
	// GIVEN a locality pattern that never jumps
	refs, err := Generate(Spec{Pattern: Locality, Length: 300, Pages: 100, WorkingSet: 4, JumpProb: 0, Seed: 9})
	require.NoError(t, err)

	// THEN all references fall within one window of WorkingSet pages
	lo, hi := refs[0], refs[0]
	for _, r := range refs {
		lo, hi = min(lo, r), max(hi, r)
	}
	assert.Less(t, hi-lo, 4)
}

func TestGenerate_Loop(t *testing.T) {
	refs, err := Generate(Spec{Pattern: Loop, Length: 7, WorkingSet: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, refs)
}

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"unknown pattern", Spec{Pattern: "zipf", Length: 1, Pages: 1}},
		{"negative length", Spec{Pattern: Uniform, Length: -1, Pages: 1}},
		{"no pages", Spec{Pattern: Uniform, Length: 1}},
		{"window larger than pages", Spec{Pattern: Locality, Length: 1, Pages: 3, WorkingSet: 4}},
		{"jump prob above one", Spec{Pattern: Locality, Length: 1, Pages: 3, WorkingSet: 2, JumpProb: 1.5}},
		{"empty loop", Spec{Pattern: Loop, Length: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.spec.Validate())
			_, err := Generate(tc.spec)
			assert.Error(t, err)
		})
	}
}

func TestLoadSpec_StrictFields(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("pattern: loop\nlength: 4\nworking_set: 2\n"), 0o644))
	spec, err := LoadSpec(good)
	require.NoError(t, err)
	assert.Equal(t, Loop, spec.Pattern)

	typo := filepath.Join(dir, "typo.yaml")
	require.NoError(t, os.WriteFile(typo, []byte("pattern: loop\nlenght: 4\nworking_set: 2\n"), 0o644))
	_, err = LoadSpec(typo)
	assert.Error(t, err)
}

func TestPartitionedRNG_CachesPerSubsystem(t *testing.T) {
	p := NewPartitionedRNG(5)
	assert.Same(t, p.ForSubsystem("uniform"), p.ForSubsystem("uniform"))
	assert.NotSame(t, p.ForSubsystem("uniform"), p.ForSubsystem("loop"))
	assert.Equal(t, int64(5), p.Seed())
}

func TestLoadSpec_InvalidReturnsZeroValue(t *testing.T) {
	// GIVEN a well-formed file describing an invalid spec
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pattern: loop\nlength: 4\nworking_set: 0\n"), 0o644))

	// THEN LoadSpec fails and returns no partially filled spec
	spec, err := LoadSpec(path)
	assert.Error(t, err)
	assert.Equal(t, Spec{}, spec)
}
