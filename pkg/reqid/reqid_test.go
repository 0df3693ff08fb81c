package reqid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{
			name:     "empty set yields first identifier",
			existing: nil,
			want:     "REQ_001",
		},
		{
			name:     "increments past the maximum",
			existing: []string{"REQ_001", "REQ_003", "REQ_002"},
			want:     "REQ_004",
		},
		{
			name:     "ignores malformed identifiers",
			existing: []string{"REQ_", "REQ_abc", "foo", "REQ_007x", "REQ_005"},
			want:     "REQ_006",
		},
		{
			name:     "entirely malformed set yields first identifier",
			existing: []string{"garbage", "REQ_x", ""},
			want:     "REQ_001",
		},
		{
			name:     "pads to three digits",
			existing: []string{"REQ_008"},
			want:     "REQ_009",
		},
		{
			name:     "width grows past 999",
			existing: []string{"REQ_999"},
			want:     "REQ_1000",
		},
		{
			name:     "keeps growing above four digits",
			existing: []string{"REQ_1000", "REQ_042"},
			want:     "REQ_1001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.existing)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, tt.existing, got)
		})
	}
}

func TestNextSuffixIsMaxPlusOne(t *testing.T) {
	existing := []string{"REQ_010", "REQ_125", "REQ_004"}

	got := Next(existing)

	n, ok := Parse(got)
	require.True(t, ok)
	assert.Equal(t, uint64(126), n)
}

func TestParse(t *testing.T) {
	n, ok := Parse("REQ_042")
	require.True(t, ok)
	assert.Equal(t, uint64(42), n)

	for _, bad := range []string{"", "REQ_", "req_001", "REQ_1a", "X_001"} {
		_, ok := Parse(bad)
		assert.False(t, ok, "expected %q not to parse", bad)
	}
}
