package cache

import "hash/fnv"

// Fingerprint hashes a raw domain filter into the uint64 key space the
// clause cache is indexed by.
func Fingerprint(raw []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(raw)
	return h.Sum64()
}
