package constants

import (
	"fmt"
	"time"
)

// Session store keys and TTLs.
// Pattern: aerobook:session:{sessionID}:{key}

const CACHE_PREFIX = "aerobook"

// Named keys within a session. These mirror what the booking UI persists so
// a page reload does not lose an in-progress booking. The provider session
// stays authoritative for price and availability; this is only a cache.
const (
	KeyTripDescriptor = "trip"       // serialized trip + legs
	KeySessionTokens  = "tokens"     // provider credential pair (tokenId, traceId)
	KeySelectedFlight = "flight"     // per-leg selected-flight snapshot, suffixed with leg index
	KeySelections     = "selections" // per-leg ancillary selections
)

// TTLs for session-scoped state
const (
	TTL_SESSION   = 2 * time.Hour
	TTL_SELECTION = 2 * time.Hour
)

// SessionKey builds the Redis key for a named value in a session
func SessionKey(sessionID, key string) string {
	return fmt.Sprintf("%s:session:%s:%s", CACHE_PREFIX, sessionID, key)
}

// LegKey suffixes a named key with a leg index, e.g. flight:2
func LegKey(key string, legIndex int) string {
	return fmt.Sprintf("%s:%d", key, legIndex)
}
