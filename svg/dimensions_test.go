package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/iconforge/errors"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func TestParseDimension(t *testing.T) {
	cases := []struct {
		input string
		want  *int
	}{
		{"24", intPtr(24)},
		{"100", intPtr(100)},
		{"24px", intPtr(24)},
		{"16pt", intPtr(16)},
		{"2em", intPtr(2)},
		{"3rem", intPtr(3)},
		{"50vh", intPtr(50)},
		{"50vw", intPtr(50)},
		{"1.5em", nil}, // non-integer
		{"100%", nil},  // percentage not supported
		{"-24px", nil},
		{"0px", nil},
		{"invalid", nil},
		{"", nil},
	}

	for _, tc := range cases {
		got := parseDimension(tc.input)
		if tc.want == nil {
			assert.Nil(t, got, tc.input)
		} else {
			require.NotNil(t, got, tc.input)
			assert.Equal(t, *tc.want, *got, tc.input)
		}
	}
}

func TestParseViewBox(t *testing.T) {
	vb, err := parseViewBox("0 0 24 24")
	require.NoError(t, err)
	assert.Equal(t, viewBox{0, 0, 24, 24}, vb)

	vb, err = parseViewBox("0 0 100 50")
	require.NoError(t, err)
	assert.Equal(t, viewBox{0, 0, 100, 50}, vb)

	// Fractional fields round to nearest integer
	vb, err = parseViewBox("0.4 -0.4 23.6 24.5")
	require.NoError(t, err)
	assert.Equal(t, viewBox{0, 0, 24, 25}, vb)

	for _, input := range []string{"invalid", "0 0 24", "0 0 24 24 24", ""} {
		_, err := parseViewBox(input)
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, errors.ErrMalformedSource), input)
	}
}

func TestResolveDimensionsTable(t *testing.T) {
	cases := []struct {
		name          string
		width, height *int
		viewBox       *string
		wantW, wantH  int
		wantVB        string
		wantDefaulted bool
	}{
		{"all present", intPtr(24), intPtr(24), strPtr("0 0 24 24"), 24, 24, "0 0 24 24", false},
		{"width and height", intPtr(32), intPtr(32), nil, 32, 32, "0 0 32 32", false},
		{"viewBox only", nil, nil, strPtr("0 0 48 48"), 48, 48, "0 0 48 48", false},
		{"width only", intPtr(16), nil, nil, 16, 16, "0 0 16 16", false},
		{"height only", nil, intPtr(20), nil, 20, 20, "0 0 20 20", false},
		{"width and viewBox", intPtr(16), nil, strPtr("0 0 24 32"), 16, 32, "0 0 24 32", false},
		{"height and viewBox", nil, intPtr(16), strPtr("0 0 24 32"), 24, 16, "0 0 24 32", false},
		{"nothing", nil, nil, nil, 24, 24, "0 0 24 24", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h, vb, defaulted, err := resolveDimensions(tc.width, tc.height, tc.viewBox)
			require.NoError(t, err)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
			assert.Equal(t, tc.wantVB, vb)
			assert.Equal(t, tc.wantDefaulted, defaulted)
		})
	}
}

func TestResolveDimensionsBadViewBox(t *testing.T) {
	_, _, _, _, err := resolveDimensions(nil, nil, strPtr("0 0 24"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMalformedSource))

	_, _, _, _, err = resolveDimensions(intPtr(24), nil, strPtr("garbage"))
	require.Error(t, err)
}
