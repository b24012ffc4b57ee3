package wallet

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	txEntropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	txEntropyMu sync.Mutex
)

// newTransactionID returns a lexicographically sortable unique id.
func newTransactionID() string {
	txEntropyMu.Lock()
	defer txEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), txEntropy).String()
}
