package main

import (
	"os"
	"path/filepath"
	"testing"

	bmerge "github.com/folbricht/blockmerge"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	files := map[string]string{
		"config.json": `{
			"host_whitelist": ["good.example"],
			"host_blacklist": ["bad.example", "worse.example"],
			"blocklists": ["https://b.test/hosts", "https://a.test/hosts", "https://b.test/hosts"]
		}`,
		"config.toml": `
host_whitelist = ["good.example"]
host_blacklist = ["bad.example", "worse.example"]
blocklists = ["https://b.test/hosts", "https://a.test/hosts", "https://b.test/hosts"]
`,
		"config.yaml": `
host_whitelist: [good.example]
host_blacklist:
  - bad.example
  - worse.example
blocklists:
  - https://b.test/hosts
  - https://a.test/hosts
  - https://b.test/hosts
`,
	}
	for name, content := range files {
		cfg, err := loadConfig(writeConfig(t, name, content))
		require.NoError(t, err, name)
		require.True(t, cfg.whitelist.Contains("good.example"), name)
		require.Equal(t, 1, cfg.whitelist.Len(), name)
		require.Equal(t, []bmerge.Host{"bad.example", "worse.example"}, cfg.blacklist, name)
		require.Equal(t, []bmerge.Source{"https://a.test/hosts", "https://b.test/hosts"}, cfg.sources, name)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"bad whitelist": `{"host_whitelist": ["good example"], "host_blacklist": [], "blocklists": []}`,
		"bad blacklist": `{"host_whitelist": [], "host_blacklist": ["a/b"], "blocklists": []}`,
		"bad url":       `{"host_whitelist": [], "host_blacklist": [], "blocklists": ["not a url"]}`,
		"syntax":        `{"host_whitelist": [`,
	}
	for name, content := range tests {
		_, err := loadConfig(writeConfig(t, "config.json", content))
		require.Error(t, err, name)
		require.True(t, bmerge.IsKind(err, bmerge.KindConfig), name)
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.True(t, bmerge.IsKind(err, bmerge.KindConfig))

	// The offending value is named in the error
	_, err = loadConfig(writeConfig(t, "config.json", `{"host_whitelist": [], "host_blacklist": ["has space"], "blocklists": []}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), `"has space"`)
	require.Contains(t, err.Error(), "host_blacklist")
}

func TestLoadConfigMissingField(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing string
	}{
		{"config.json", `{"host_whitelst": ["good.example"], "host_blacklist": [], "blocklists": []}`, "host_whitelist"},
		{"config.json", `{"host_whitelist": [], "blocklists": []}`, "host_blacklist"},
		{"config.toml", "host_whitelist = []\nhost_blacklist = []\n", "blocklists"},
		{"config.yaml", "host_whitelist: []\nblocklist:\n  - https://a.test/hosts\nhost_blacklist: []\n", "blocklists"},
	}
	for _, test := range tests {
		_, err := loadConfig(writeConfig(t, test.name, test.content))
		require.Error(t, err, test.content)
		require.True(t, bmerge.IsKind(err, bmerge.KindConfig), test.content)
		require.Contains(t, err.Error(), "missing field "+test.missing, test.content)
	}

	// Empty lists are fine
	cfg, err := loadConfig(writeConfig(t, "config.json", `{"host_whitelist": [], "host_blacklist": [], "blocklists": []}`))
	require.NoError(t, err)
	require.Equal(t, 0, cfg.whitelist.Len())
	require.Empty(t, cfg.sources)
}
