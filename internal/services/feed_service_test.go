package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero falls back to default", 0, DefaultFeedLimit},
		{"negative falls back to default", -5, DefaultFeedLimit},
		{"in range passes through", 25, 25},
		{"at max passes through", 50, 50},
		{"above max clamps to max", 51, MaxFeedLimit},
		{"absurd value clamps to max", 10000, MaxFeedLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampLimit(tt.limit, DefaultFeedLimit, MaxFeedLimit))
		})
	}
}

func TestSplitSkills(t *testing.T) {
	assert.Nil(t, SplitSkills(""))
	assert.Equal(t, []string{"go"}, SplitSkills("go"))
	assert.Equal(t, []string{"go", "postgres", "docker"}, SplitSkills("go,postgres, docker"))
	// Пустые элементы отбрасываются
	assert.Equal(t, []string{"go", "postgres"}, SplitSkills("go,, postgres,"))
	assert.Equal(t, []string{"go"}, SplitSkills("  go  "))
}
