package refcount

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountZeroValue(t *testing.T) {
	var c Count
	assert.Equal(t, int32(0), c.Load())
	assert.False(t, c.Unique(), "expected zero count not to be unique")
}

func TestCountRetainRelease(t *testing.T) {
	var c Count
	assert.Equal(t, int32(1), c.Retain())
	assert.True(t, c.Unique())
	assert.Equal(t, int32(2), c.Retain())
	assert.False(t, c.Unique())
	assert.Equal(t, int32(1), c.Release())
	assert.True(t, c.Unique())
	assert.Equal(t, int32(0), c.Release())
	assert.False(t, c.Unique())
}

func TestCountUnderflowPanics(t *testing.T) {
	var c Count
	assert.PanicsWithValue(t, "refcount: release of unreferenced value (count=-1)", func() {
		c.Release()
	})
}

func TestCountConcurrent(t *testing.T) {
	var c Count
	c.Retain()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Retain()
				c.Release()
			}
		}()
	}
	wg.Wait()
	if !c.Unique() {
		t.Errorf("expected count to be back at 1, is %d", c.Load())
	}
}
