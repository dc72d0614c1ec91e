package bmerge

type BlocklistLoader interface {
	// Returns the raw content of the blocklist at the given location.
	Load(src Source) (string, error)
}
