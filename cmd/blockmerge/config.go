package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	bmerge "github.com/folbricht/blockmerge"
	"gopkg.in/yaml.v3"
)

// All fields are required. They're pointers to tell a missing or misspelled
// key apart from an empty list.
type config struct {
	HostWhitelist *[]string `toml:"host_whitelist" yaml:"host_whitelist" json:"host_whitelist"`
	HostBlacklist *[]string `toml:"host_blacklist" yaml:"host_blacklist" json:"host_blacklist"`
	Blocklists    *[]string `toml:"blocklists" yaml:"blocklists" json:"blocklists"`
}

// mergeConfig is the validated form of the config file.
type mergeConfig struct {
	whitelist *bmerge.HostSet
	blacklist []bmerge.Host
	sources   []bmerge.Source
}

// loadConfig reads a config file and returns the validated content. The decoder
// is chosen by file extension: TOML, YAML, or JSON for anything else.
func loadConfig(name string) (mergeConfig, error) {
	var c config
	b, err := os.ReadFile(name)
	if err != nil {
		return mergeConfig{}, bmerge.WrapError(bmerge.KindConfig, err, "can't read %s", name)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		_, err = toml.Decode(string(b), &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &c)
	default:
		err = json.Unmarshal(b, &c)
	}
	if err != nil {
		return mergeConfig{}, bmerge.WrapError(bmerge.KindConfig, err, "can't parse %s", name)
	}
	mc, err := c.validate()
	if err != nil {
		return mergeConfig{}, bmerge.WrapError(bmerge.KindConfig, err, "invalid config %s", name)
	}
	return mc, nil
}

func (c config) validate() (mergeConfig, error) {
	for _, field := range []struct {
		name  string
		value *[]string
	}{
		{"host_whitelist", c.HostWhitelist},
		{"host_blacklist", c.HostBlacklist},
		{"blocklists", c.Blocklists},
	} {
		if field.value == nil {
			return mergeConfig{}, bmerge.NewError(bmerge.KindConfig, "missing field %s", field.name)
		}
	}
	whitelist, err := parseHosts("host_whitelist", *c.HostWhitelist)
	if err != nil {
		return mergeConfig{}, err
	}
	blacklist, err := parseHosts("host_blacklist", *c.HostBlacklist)
	if err != nil {
		return mergeConfig{}, err
	}
	seen := make(map[bmerge.Source]struct{})
	var sources []bmerge.Source
	for _, raw := range *c.Blocklists {
		src, err := bmerge.ParseSource(raw)
		if err != nil {
			return mergeConfig{}, bmerge.WrapError(bmerge.KindConfig, err, "blocklists")
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		sources = append(sources, src)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return mergeConfig{
		whitelist: bmerge.NewHostSet(whitelist...),
		blacklist: blacklist,
		sources:   sources,
	}, nil
}

func parseHosts(field string, values []string) ([]bmerge.Host, error) {
	hosts := make([]bmerge.Host, 0, len(values))
	for _, v := range values {
		h, err := bmerge.NewHost(v)
		if err != nil {
			return nil, bmerge.WrapError(bmerge.KindConfig, err, "%s", field)
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}
