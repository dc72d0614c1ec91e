package bmerge

import "sort"

// HostSet is a set of hosts that iterates in ascending order.
type HostSet struct {
	hosts map[Host]struct{}
}

// NewHostSet returns a set holding the given hosts.
func NewHostSet(hosts ...Host) *HostSet {
	s := &HostSet{hosts: make(map[Host]struct{}, len(hosts))}
	for _, h := range hosts {
		s.Add(h)
	}
	return s
}

// Add inserts h and reports whether it was not present yet.
func (s *HostSet) Add(h Host) bool {
	if _, ok := s.hosts[h]; ok {
		return false
	}
	s.hosts[h] = struct{}{}
	return true
}

func (s *HostSet) Contains(h Host) bool {
	if s == nil {
		return false
	}
	_, ok := s.hosts[h]
	return ok
}

func (s *HostSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.hosts)
}

// Sorted returns the members in ascending lexicographic order.
func (s *HostSet) Sorted() []Host {
	if s == nil {
		return nil
	}
	out := make([]Host, 0, len(s.hosts))
	for h := range s.hosts {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
