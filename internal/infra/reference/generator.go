// Package reference creates payment transaction references.
package reference

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"

	"shop/internal/domain/service"
)

const randomBytes = 6

type generator struct {
	now func() time.Time
}

// NewGenerator returns references shaped txn_<12 hex>_<unix millis>.
func NewGenerator() service.ReferenceGenerator {
	return &generator{now: time.Now}
}

func (g *generator) NewReference() string {
	buf := make([]byte, randomBytes)
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(buf)

	return "txn_" + hex.EncodeToString(buf) + "_" + strconv.FormatInt(g.now().UnixMilli(), 10)
}
