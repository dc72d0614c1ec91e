package bmerge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHost(t *testing.T) {
	for _, raw := range []string{"fish.com", "a", "xn--bcher-kva.example", "under_score.test", "trailing.dot."} {
		h, err := NewHost(raw)
		require.NoError(t, err, raw)
		require.Equal(t, raw, h.String())
	}

	for _, raw := range []string{"", "  fish", "fish ", "fi sh", "fi\tsh", "fish\n", "a/b", `"quoted"`, "no break"} {
		_, err := NewHost(raw)
		require.Error(t, err, "%q", raw)
		require.True(t, IsKind(err, KindValidation), "%q", raw)
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		raw string
		ok  bool
	}{
		{"https://example.com/hosts.txt", true},
		{"http://example.com/list", true},
		{"file:///etc/blocklist", true},
		{"ftp://example.com/list", false},
		{"example.com/list", false},
		{"https:///list", false},
		{"file://", false},
		{"http://[::1", false},
	}
	for _, test := range tests {
		src, err := ParseSource(test.raw)
		if !test.ok {
			require.Error(t, err, test.raw)
			require.True(t, IsKind(err, KindValidation), test.raw)
			continue
		}
		require.NoError(t, err, test.raw)
		require.Equal(t, test.raw, src.String())
	}
}

func TestHostSet(t *testing.T) {
	s := NewHostSet("b.test", "a.test")
	require.True(t, s.Add("c.test"))
	require.False(t, s.Add("a.test"))
	require.True(t, s.Contains("b.test"))
	require.False(t, s.Contains("d.test"))
	require.Equal(t, 3, s.Len())
	require.Equal(t, []Host{"a.test", "b.test", "c.test"}, s.Sorted())

	var empty *HostSet
	require.False(t, empty.Contains("a.test"))
	require.Equal(t, 0, empty.Len())
}
