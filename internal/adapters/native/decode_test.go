package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
)

func TestDecodeResult_OrderedArray(t *testing.T) {
	best, usedFallback, err := decodeResult(`{"profit":46,"mixArray":["Cuke","Banana"]}`, nil)

	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, mixing.Mix{"Cuke", "Banana"}, best.Mix)
	assert.Equal(t, 46.0, best.Profit)
}

func TestDecodeResult_KeyedMapping(t *testing.T) {
	best, usedFallback, err := decodeResult(`{"profit":12.5,"mix":{"0":"Banana","1":"Cuke"}}`, nil)

	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, mixing.Mix{"Banana", "Cuke"}, best.Mix)
	assert.Equal(t, 12.5, best.Profit)
}

func TestDecodeResult_SecondaryAccessor(t *testing.T) {
	best, usedFallback, err := decodeResult(`{"profit":7,"bestMix":{"mix":["Paracetamol"]}}`, nil)

	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, mixing.Mix{"Paracetamol"}, best.Mix)
}

func TestDecodeResult_NonStringEntriesDropped(t *testing.T) {
	best, usedFallback, err := decodeResult(`{"profit":3,"mix":{"0":"Cuke","count":2,"1":"Banana"}}`, nil)

	require.NoError(t, err)
	assert.False(t, usedFallback)
	assert.Equal(t, mixing.Mix{"Cuke", "Banana"}, best.Mix)
}

func TestDecodeResult_EmptyMappingSubstitutesFallback(t *testing.T) {
	fallback := mixing.Mix{"Cuke", "Banana", "Gasoline"}

	best, usedFallback, err := decodeResult(`{"profit":46,"mix":{}}`, fallback)

	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.Equal(t, fallback, best.Mix)
	assert.Equal(t, 46.0, best.Profit)
}

func TestDecodeResult_MissingMixSubstitutesFallback(t *testing.T) {
	fallback := mixing.Mix{"Cuke"}

	best, usedFallback, err := decodeResult(`{"profit":0}`, fallback)

	require.NoError(t, err)
	assert.True(t, usedFallback)
	assert.Equal(t, fallback, best.Mix)
}

func TestDecodeResult_InvalidJSON(t *testing.T) {
	_, _, err := decodeResult(`profit: 46`, nil)
	assert.Error(t, err)
}

func TestDecodeResult_MissingProfit(t *testing.T) {
	_, _, err := decodeResult(`{"mixArray":["Cuke"]}`, nil)
	assert.Error(t, err)
}
