package hashutil

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// ShortHashLen is the number of hex characters used when a hash is
// attached to an observational event for log correlation.
const ShortHashLen = 12

// ShortHash returns the first ShortHashLen hex characters of the BLAKE3
// hash of data. Collisions are acceptable; this identifies payloads in
// logs, nothing more.
func ShortHash(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])[:ShortHashLen]
}
