/*
Package bmerge merges DNS blocklists from a number of sources into a single list of
hosts, and writes it in a format understood by a local resolver.

Sources

Blocklists are fetched with a BlocklistLoader, typically over HTTP(S). The last
successfully fetched copy of every list is kept in a BlocklistCache and used when a
later fetch fails. Lists are in hosts-file format: one hostname per line, optionally
preceded by the unspecified address. Loopback entries are ignored, other addresses
are reported as errors.

Merging

A Merger processes the sources one after another. The result holds every host of the
blacklist and every listed host that isn't in the whitelist. Problems with single
sources or lines are logged and mark the run as failed, but don't stop it.

Output

The merged hosts are written sorted, as unbound local-zones, dnsmasq addresses, a hosts
file, a response policy zone or a CDB database.
*/
package bmerge
