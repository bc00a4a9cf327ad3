package rangectl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelate(t *testing.T) {
	cases := map[string]struct {
		kind        string
		a, b        string
		contains    []string
		expectedErr bool
	}{
		"Int": {
			kind:     KindInt,
			a:        "42-55",
			b:        "51-1023",
			contains: []string{"[42, 55)", "[51, 1023)", "[51, 55)", "[42, 1023)", "972"},
		},
		"Instant": {
			kind:     KindInstant,
			a:        "2024-01-01T00:00:00Z/24h",
			b:        "2024-01-02T00:00:00Z/1h",
			contains: []string{"24h0m0s", "[2024-01-01T00:00:00Z, 2024-01-02T01:00:00Z)"},
		},
		"Addr": {
			kind:     KindAddr,
			a:        "10.0.0.0/24",
			b:        "10.0.0.128/25",
			contains: []string{"[10.0.0.0, 10.0.1.0)", "[10.0.0.128, 10.0.1.0)", "256", "128"},
		},
		"UnknownKind": {
			kind:        "float",
			a:           "1-2",
			b:           "2-3",
			expectedErr: true,
		},
		"BadRange": {
			kind:        KindInt,
			a:           "1",
			b:           "2-3",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Relate(&buf, tc.kind, tc.a, tc.b)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestPunch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Punch(&buf, KindInt, "51-2840", "55-1610"))
	assert.Contains(t, buf.String(), "[51, 55)")
	assert.Contains(t, buf.String(), "[1610, 2840)")
	assert.NotContains(t, buf.String(), "[55, 1610)")

	assert.Error(t, Punch(&buf, KindInt, "51-2840", "x"))
	assert.Error(t, Punch(&buf, "float", "1-2", "1-2"))
}

func TestMerge(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Merge(&buf, KindInt, []string{"5-6", "1-2", "2-3"}))
	assert.Contains(t, buf.String(), "[1, 3)")
	assert.Contains(t, buf.String(), "[5, 6)")

	assert.Error(t, Merge(&buf, KindAddr, []string{"10.0.0.0/8", "nope"}))
}

func TestPrefixes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Prefixes(&buf, "10.0.0.1-10.0.0.7"))
	for _, p := range []string{"10.0.0.1/32", "10.0.0.2/31", "10.0.0.4/30"} {
		assert.Contains(t, buf.String(), p)
	}
	assert.Error(t, Prefixes(&buf, "10.0.0.0/99"))
}

func TestGaps(t *testing.T) {
	cases := map[string]struct {
		kind        string
		within      string
		args        []string
		contains    []string
		notContains []string
		expectedErr bool
	}{
		"Int": {
			kind:        KindInt,
			within:      "0-100",
			args:        []string{"10-20", "15-30", "90-120", "-50--40"},
			contains:    []string{"[0, 10)", "[30, 90)", "60"},
			notContains: []string{"[10, 20)", "[90, 100)", "[-50, -40)"},
		},
		"Addr": {
			kind:     KindAddr,
			within:   "10.0.0.0/24",
			args:     []string{"10.0.0.0/25"},
			contains: []string{"[10.0.0.128, 10.0.1.0)", "128"},
		},
		"NothingClaimed": {
			kind:     KindInt,
			within:   "0-100",
			contains: []string{"[0, 100)"},
		},
		"EmptyWithin": {
			kind:        KindInt,
			within:      "5-5",
			expectedErr: true,
		},
		"BadArg": {
			kind:        KindInt,
			within:      "0-100",
			args:        []string{"10"},
			expectedErr: true,
		},
		"UnknownKind": {
			kind:        "float",
			within:      "0-100",
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Gaps(&buf, tc.kind, tc.within, tc.args)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
