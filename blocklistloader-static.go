package bmerge

// StaticLoader serves blocklists from memory. Sources that aren't in the map
// fail to load. Used to feed fixed content into a merge, for example in tests.
type StaticLoader struct {
	lists map[Source]string
}

var _ BlocklistLoader = &StaticLoader{}

func NewStaticLoader(lists map[Source]string) *StaticLoader {
	return &StaticLoader{lists}
}

func (l *StaticLoader) Load(src Source) (string, error) {
	content, ok := l.lists[src]
	if !ok {
		return "", NewError(KindFetch, "no content for %s", src)
	}
	return content, nil
}
