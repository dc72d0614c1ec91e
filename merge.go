package bmerge

import (
	"time"
)

// Merger combines a number of blocklists into one set of hosts. Sources are
// processed one at a time, in the order they're given.
type Merger struct {
	opt   MergerOptions
	sleep func(time.Duration)
}

// MergerOptions holds the inputs of a merge.
type MergerOptions struct {
	// Hosts that are never part of the result, no matter which list has them.
	Whitelist *HostSet

	// Hosts that are always part of the result.
	Blacklist []Host

	// Used to fetch every source. Required.
	Loader BlocklistLoader

	// Optional. Fresh content is written to it and it's consulted when a
	// fetch fails.
	Cache BlocklistCache

	// Pause after a source was fetched or served from the cache, before
	// moving on to the next one. No pause follows a skipped source.
	Delay time.Duration
}

// SourceStatus describes where the content of a source came from.
type SourceStatus int

const (
	SourceFetched SourceStatus = iota
	SourceCached
	SourceSkipped
)

func (s SourceStatus) String() string {
	switch s {
	case SourceFetched:
		return "fetched"
	case SourceCached:
		return "cached"
	default:
		return "skipped"
	}
}

// SourceResult records what happened to one source during a merge.
type SourceResult struct {
	Source      Source
	Status      SourceStatus
	FetchErr    error // Set if the source couldn't be fetched
	Hosts       int   // Valid entries in the list, including whitelisted ones
	Whitelisted int   // Entries dropped because they're in the whitelist
	ParseErrors int
}

// Report is the outcome of a merge.
type Report struct {
	Sources []SourceResult
	failed  bool
}

// Failed returns true if any source had to be served from the cache, was
// skipped, or had lines that couldn't be parsed.
func (r *Report) Failed() bool {
	return r.failed
}

func NewMerger(opt MergerOptions) *Merger {
	return &Merger{opt: opt, sleep: time.Sleep}
}

// Merge fetches and parses all sources and returns the union of the blacklist
// and all listed hosts that are not in the whitelist. Errors in individual
// sources or lines are logged and recorded in the report, they don't stop the
// merge.
func (m *Merger) Merge(sources []Source) (*HostSet, *Report) {
	merged := NewHostSet(m.opt.Blacklist...)
	report := &Report{}

	var pause bool
	for _, src := range sources {
		if pause && m.opt.Delay > 0 {
			m.sleep(m.opt.Delay)
		}
		res := m.mergeSource(src, merged)
		pause = res.Status != SourceSkipped
		if res.Status != SourceFetched || res.ParseErrors > 0 {
			report.failed = true
		}
		report.Sources = append(report.Sources, res)
	}
	return merged, report
}

func (m *Merger) mergeSource(src Source, merged *HostSet) SourceResult {
	log := sourceLogger(src)
	res := SourceResult{Source: src}

	content, err := m.opt.Loader.Load(src)
	if err == nil {
		res.Status = SourceFetched
		if m.opt.Cache != nil {
			if err := m.opt.Cache.Put(src, content); err != nil {
				log.WithError(err).Warn("failed writing to cache")
			}
		}
	} else {
		log.WithError(err).Warn("failed to fetch blocklist")
		res.FetchErr = err
		res.Status = SourceSkipped
		cached, ok := m.cached(src)
		if !ok {
			log.Warn("no cached version available, skipping blocklist")
			return res
		}
		log.Info("using cached version")
		res.Status = SourceCached
		content = cached
	}

	for _, r := range ParseBlocklist(content) {
		if r.Err != nil {
			log.WithField("line", r.Line).WithError(r.Err).Warn("invalid blocklist entry")
			res.ParseErrors++
			continue
		}
		res.Hosts++
		if m.opt.Whitelist.Contains(r.Host) {
			res.Whitelisted++
			continue
		}
		merged.Add(r.Host)
	}
	log.WithField("hosts", res.Hosts).WithField("status", res.Status).Debug("processed blocklist")
	return res
}

func (m *Merger) cached(src Source) (string, bool) {
	if m.opt.Cache == nil {
		return "", false
	}
	content, ok, err := m.opt.Cache.Get(src)
	if err != nil {
		sourceLogger(src).WithError(err).Warn("failed reading from cache")
		return "", false
	}
	return content, ok
}
