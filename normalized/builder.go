package normalized

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/textnorm"
)

// builder collects changes while a String is under construction. It never
// leaves this package; freeze copies the collected changes into the
// resulting String.
type builder struct {
	changes []textnorm.Change
}

func (b *builder) record(e textnorm.Edit) {
	b.changes = append(b.changes, e.Change)
}

func (b *builder) freeze(original, normalized string) *String {
	changes := make([]textnorm.Change, len(b.changes))
	copy(changes, b.changes)
	return &String{
		original:   original,
		normalized: normalized,
		changes:    changes,
	}
}

// Builders are needed for every string to normalize, and clients tend to
// normalize lots of short strings (e.g., every comment of a source file).
// We pool them to keep their change buffers.
type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBuilderPool *builderPool

const initialChangesCap = 64

func init() {
	globalBuilderPool = &builderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			b := &builder{changes: make([]textnorm.Change, 0, initialChangesCap)}
			return b, nil
		})
	globalBuilderPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, config)
}

// borrowBuilder returns an empty builder.
func borrowBuilder() *builder {
	o, err := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	if err != nil {
		TC().Errorf("cannot borrow builder from pool: %v", err)
		return &builder{}
	}
	return o.(*builder)
}

// release clears the builder and puts it back into the pool.
func (b *builder) release() {
	b.changes = b.changes[:0]
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, b)
}
