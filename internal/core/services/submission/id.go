package submission

import (
	"encoding/binary"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces compact local display keys: base-36 milliseconds
// followed by base-36 random bits. The time part never repeats or goes
// backwards within one generator.
type IDGenerator struct {
	mu     sync.Mutex
	last   int64
	now    func() time.Time
	random func() uint64
}

// NewIDGenerator creates a generator reading the wall clock
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		now:    time.Now,
		random: randomBits,
	}
}

// NewID returns the next identifier
func (g *IDGenerator) NewID() string {
	g.mu.Lock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()

	return strconv.FormatInt(ms, 36) + strconv.FormatUint(g.random(), 36)
}

func randomBits() uint64 {
	id := uuid.New()
	return binary.BigEndian.Uint64(id[8:])
}
