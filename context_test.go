package blake2f

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zeebo/assert"
)

func TestCompressContext(t *testing.T) {
	ctx := context.Background()

	for _, rounds := range []uint64{
		0, 1, 12,
		ContextCheckRounds - 1,
		ContextCheckRounds,
		ContextCheckRounds + 1,
		3*ContextCheckRounds + 7,
	} {
		p := randomParams()

		exp, err := Compress(rounds, p.State[:], p.Block[:], p.Offsets[:], p.Final)
		assert.NoError(t, err)

		got, err := CompressContext(ctx, rounds, p.State[:], p.Block[:], p.Offsets[:], p.Final)
		assert.NoError(t, err)
		assert.Equal(t, got, exp)
	}
}

func TestCompressContext_Vectors(t *testing.T) {
	for _, tv := range vectors.Fast {
		p, err := Decode(tv.input())
		assert.NoError(t, err)

		got, err := CompressContext(context.Background(),
			uint64(p.Rounds), p.State[:], p.Block[:], p.Offsets[:], p.Final)
		assert.NoError(t, err)
		assert.Equal(t, got, p.Compress())
	}
}

func TestCompressContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var p Params
	_, err := CompressContext(ctx, 0, p.State[:], p.Block[:], p.Offsets[:], false)
	assert.That(t, errors.Is(err, context.Canceled))

	_, err = CompressContext(ctx, 1<<40, p.State[:], p.Block[:], p.Offsets[:], false)
	assert.That(t, errors.Is(err, context.Canceled))
}

func TestCompressContext_Deadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var p Params
	start := time.Now()
	_, err := CompressContext(ctx, 1<<62, p.State[:], p.Block[:], p.Offsets[:], true)
	assert.That(t, errors.Is(err, context.DeadlineExceeded))
	assert.That(t, time.Since(start) < 10*time.Second)
}

func TestCompressContext_Dimensions(t *testing.T) {
	var p Params
	_, err := CompressContext(context.Background(), 1, p.State[:], p.Block[:64], p.Offsets[:], false)

	var derr *DimensionError
	assert.That(t, errors.As(err, &derr))
	assert.Equal(t, derr.Field, "block")
}
