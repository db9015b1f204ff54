package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticProvider(tagged ...TaggedHandler[*testAction]) Provider[*testAction] {
	return ProviderFunc[*testAction](func(ctx context.Context) ([]TaggedHandler[*testAction], error) {
		return tagged, nil
	})
}

func TestHolder_NilStartsEmpty(t *testing.T) {
	holder := NewHolder[*testAction](nil)
	require.NotNil(t, holder.Load())
	assert.Equal(t, 0, holder.Load().Len())

	_, err := holder.Lookup("fixed")
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionNotFound))
}

func TestHolder_ReloadSwapsTable(t *testing.T) {
	holder := NewHolder[*testAction](nil)

	first, err := holder.Reload(context.Background(), staticProvider(Tag("a", "fixed", "Fixed", &testAction{})))
	require.NoError(t, err)
	assert.Same(t, first, holder.Load())

	second, err := holder.Reload(context.Background(), staticProvider(Tag("a", "percentage", "Percentage", &testAction{})))
	require.NoError(t, err)
	assert.Same(t, second, holder.Load())
	assert.False(t, holder.Load().Has("fixed"))
	assert.True(t, first.Has("fixed"), "old table must stay intact")
}

func TestHolder_FailedReloadKeepsCurrent(t *testing.T) {
	table, err := Build([]TaggedHandler[*testAction]{Tag("a", "fixed", "Fixed", &testAction{})})
	require.NoError(t, err)
	holder := NewHolder(table)

	broken := TaggedHandler[*testAction]{ID: "b", Attributes: map[string]string{AttributeType: "percentage"}, Handler: &testAction{}}
	_, err = holder.Reload(context.Background(), staticProvider(broken))
	require.True(t, errors.IsErrorCode(err, errors.ErrActionAttributeMissing))
	assert.Same(t, table, holder.Load())
}

func TestHolder_StoreReturnsPrevious(t *testing.T) {
	holder := NewHolder[*testAction](nil)
	initial := holder.Load()

	table, err := Build([]TaggedHandler[*testAction]{Tag("a", "fixed", "Fixed", &testAction{})})
	require.NoError(t, err)

	assert.Same(t, initial, holder.Store(table))
	assert.Same(t, table, holder.Load())
}

func TestHolder_ConcurrentReaders(t *testing.T) {
	holder := NewHolder[*testAction](nil)
	provider := staticProvider(Tag("a", "fixed", "Fixed", &testAction{}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				table := holder.Load()
				if table.Len() != len(table.Labels()) {
					t.Errorf("table and labels out of sync")
				}
			}
		}()
	}
	for i := 0; i < 10; i++ {
		_, err := holder.Reload(context.Background(), provider)
		require.NoError(t, err)
	}
	wg.Wait()
}
