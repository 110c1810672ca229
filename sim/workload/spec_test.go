package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSpec_Valid(t *testing.T) {
	path := writeSpecFile(t, `
seed: 7
threads:
  - {id: 1, arrival: 0, burst: 5}
  - {id: 2, arrival: 0, burst: 3}
random:
  count: 10
  arrival_max: 20
  burst_min: 1
  burst_max: 8
`)

	spec, err := LoadSpec(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), spec.Seed)
	require.Len(t, spec.Threads, 2)
	assert.Equal(t, Entry{ID: 2, Arrival: 0, Burst: 3}, spec.Threads[1])
	require.NotNil(t, spec.Random)
	assert.Equal(t, 10, spec.Random.Count)
}

func TestLoadSpec_MissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read workload spec")
}

func TestLoadSpec_MalformedYAML(t *testing.T) {
	path := writeSpecFile(t, "threads: [not: {valid")
	_, err := LoadSpec(path)
	assert.ErrorContains(t, err, "parse workload spec")
}

func TestSpec_Validate_ZeroBurstRejected(t *testing.T) {
	// A single thread with burst 0 must be rejected at the boundary,
	// before any Thread is constructed.
	spec := &Spec{Threads: []Entry{{ID: 1, Arrival: 0, Burst: 0}}}
	assert.ErrorContains(t, spec.Validate(), "burst must be > 0")
}

func TestSpec_Validate_NegativeValuesRejected(t *testing.T) {
	spec := &Spec{Threads: []Entry{{ID: 1, Arrival: -1, Burst: 5}}}
	assert.ErrorContains(t, spec.Validate(), "arrival must be >= 0")

	spec = &Spec{Threads: []Entry{{ID: 1, Arrival: 0, Burst: -5}}}
	assert.ErrorContains(t, spec.Validate(), "burst must be > 0")
}

func TestSpec_Validate_DuplicateIDRejected(t *testing.T) {
	spec := &Spec{Threads: []Entry{
		{ID: 1, Arrival: 0, Burst: 5},
		{ID: 1, Arrival: 2, Burst: 3},
	}}
	assert.ErrorContains(t, spec.Validate(), "duplicate thread id")
}

func TestSpec_Validate_EmptyRejected(t *testing.T) {
	spec := &Spec{}
	assert.ErrorContains(t, spec.Validate(), "empty")
}

func TestSpec_Validate_RandomSection(t *testing.T) {
	cases := []struct {
		name    string
		random  RandomSpec
		wantErr string
	}{
		{"valid", RandomSpec{Count: 5, ArrivalMax: 10, BurstMin: 1, BurstMax: 4}, ""},
		{"zero count", RandomSpec{Count: 0, ArrivalMax: 10, BurstMin: 1, BurstMax: 4}, "count"},
		{"negative arrival max", RandomSpec{Count: 5, ArrivalMax: -1, BurstMin: 1, BurstMax: 4}, "arrival_max"},
		{"zero burst min", RandomSpec{Count: 5, ArrivalMax: 10, BurstMin: 0, BurstMax: 4}, "burst_min"},
		{"max below min", RandomSpec{Count: 5, ArrivalMax: 10, BurstMin: 5, BurstMax: 4}, "burst_max"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			random := tc.random
			spec := &Spec{Random: &random}
			err := spec.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}
