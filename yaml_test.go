package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type ledger struct {
	Name    string   `yaml:"name"`
	Total   BigInt   `yaml:"total"`
	Entries []BigInt `yaml:"entries"`
}

func TestBigInt_MarshalYAML(t *testing.T) {
	tests := []struct {
		x    string
		want string
	}{
		{"0", "total: 0\n"},
		{"-1", "total: -1\n"},
		{"9223372036854775808", "total: 9223372036854775808\n"},
		{"-1234567890123456789012345678901234567890", "total: -1234567890123456789012345678901234567890\n"},
	}
	for _, tt := range tests {
		v := struct {
			Total BigInt `yaml:"total"`
		}{Total: MustParse(tt.x)}
		got, err := yaml.Marshal(v)
		require.NoError(t, err, "marshaling %q", tt.x)
		assert.Equal(t, tt.want, string(got))
	}
}

func TestBigInt_UnmarshalYAML(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			doc  string
			want string
		}{
			{"total: 0\n", "0"},
			{"total: -0\n", "0"},
			{"total: 007\n", "7"},
			{"total: \"-123\"\n", "-123"},
			{"total: '+42'\n", "42"},
			{"total: 1234567890123456789012345678901234567890\n", "1234567890123456789012345678901234567890"},
		}
		for _, tt := range tests {
			var got ledger
			err := yaml.Unmarshal([]byte(tt.doc), &got)
			require.NoError(t, err, "unmarshaling %q", tt.doc)
			assert.Equal(t, tt.want, got.Total.String())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"sequence": "total: [1, 2]\n",
			"mapping":  "total: {a: 1}\n",
			"fraction": "total: 1.5\n",
			"exponent": "total: 1e3\n",
			"text":     "name: q3\ntotal: abc\n",
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				var got ledger
				err := yaml.Unmarshal([]byte(tt), &got)
				assert.Error(t, err)
			})
		}
	})

	t.Run("line", func(t *testing.T) {
		var got ledger
		err := yaml.Unmarshal([]byte("name: q3\ntotal: 12.5\n"), &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
		assert.ErrorIs(t, err, errInvalidBigInt)
	})
}

func TestBigInt_YAMLRoundTrip(t *testing.T) {
	want := ledger{
		Name:  "q3",
		Total: MustParse("12345678901234567890123"),
		Entries: []BigInt{
			MustParse("12345678901234567890000"),
			MustParse("124"),
			NegOne,
			Zero,
		},
	}

	data, err := yaml.Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "total: 12345678901234567890123\n")
	assert.NotContains(t, string(data), "\"")

	var got ledger
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, want.Name, got.Name)
	assert.True(t, got.Total.Equal(want.Total), "total = %q, want %q", got.Total, want.Total)
	require.Len(t, got.Entries, len(want.Entries))
	sum := Zero
	for i, e := range got.Entries {
		assert.True(t, e.Equal(want.Entries[i]), "entry %d = %q, want %q", i, e, want.Entries[i])
		sum = sum.Add(e)
	}
	assert.True(t, sum.Equal(got.Total), "sum = %q, want %q", sum, got.Total)
}
