package serialize

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/crypto/blake256"
)

// DocumentId computes the content-hash id of the form "<kind>:<hex64>"
// spec section 6 specifies for Result.json / RunRecord.json /
// FrontierMap.json: a BLAKE-256 digest of kind-prefixed content bytes,
// rendered as 64 lowercase hex characters.
func DocumentId(kind string, content []byte) string {
	h := blake256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0}) // domain-separate kind from content
	h.Write(content)
	sum := h.Sum(nil)
	return fmt.Sprintf("%s:%s", kind, hex.EncodeToString(sum))
}
