package version_test

import (
	"encoding/json"
	"errors"
	"testing"

	"inventory-manager/core/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Plain", "1.0.0", false},
		{"PreRelease", "1.0.0-alpha.1", false},
		{"Build", "1.0.0+20240101", false},
		{"PreReleaseAndBuild", "2.1.3-rc.2+sha.abc", false},
		{"Empty", "", true},
		{"LeadingV", "v1.0.0", true},
		{"MissingPatch", "1.2", true},
		{"MissingMinor", "1", true},
		{"Garbage", "latest", true},
		{"LeadingZero", "01.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := version.Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, version.ErrInvalid))
				assert.True(t, v.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, v.String())
			assert.False(t, v.IsZero())
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.0.0", 1},
		{"1.10.0", "1.9.0", 1},
		{"1.0.0-alpha", "1.0.0", -1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
		{"1.0.0-alpha.2", "1.0.0-alpha.10", -1},
		{"1.0.0+build.1", "1.0.0+build.2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a := version.MustParse(tt.a)
			b := version.MustParse(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
			assert.Equal(t, tt.want < 0, a.Less(b))
			assert.Equal(t, tt.want == 0, a.Equal(b))
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { version.MustParse("nope") })
}

func TestTextRoundTrip(t *testing.T) {
	type doc struct {
		Version version.Version `json:"version"`
	}

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"version":"3.2.1-beta"}`), &d))
	assert.Equal(t, "3.2.1-beta", d.Version.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"3.2.1-beta"}`, string(out))

	err = json.Unmarshal([]byte(`{"version":"3.2"}`), &d)
	assert.Error(t, err)
}
