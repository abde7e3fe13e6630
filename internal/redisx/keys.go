package redisx

import "time"

const (
	// Advisory lock serializing authorize calls per upstream id:
	// lock:authorize:{upstreamId} -> 1
	KeyAuthorizeLock = "lock:authorize:%s"
)

var (
	// Long enough to cover the lookup -> link -> create-order sequence,
	// short enough that a crashed holder does not block retries for long.
	TTLAuthorizeLock = 30 * time.Second
)
