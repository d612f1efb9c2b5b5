package mixing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
)

func TestApplySubstanceRules_BaseEffectAppended(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	cuke, err := catalog.Substance("Cuke")
	require.NoError(t, err)

	effects := mixing.ApplySubstanceRules([]string{"Calming"}, cuke)

	assert.Equal(t, []string{"Calming", "Energizing"}, effects)
}

func TestApplySubstanceRules_ReplacementInPlace(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	cuke, err := catalog.Substance("Cuke")
	require.NoError(t, err)

	// Toxic is replaced by Euphoric at its own position, then the rule
	// chain replaces Euphoric with Laxative, then the base effect lands.
	effects := mixing.ApplySubstanceRules([]string{"Toxic", "Sedating"}, cuke)

	assert.Equal(t, []string{"Laxative", "Sedating", "Energizing"}, effects)
}

func TestApplySubstanceRules_IfAbsentBlocksRule(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	banana, err := catalog.Substance("Banana")
	require.NoError(t, err)

	// Energizing→Thought-Provoking is suppressed when Cyclopean is active;
	// the Cyclopean→Energizing rule then fires on the original Energizing.
	effects := mixing.ApplySubstanceRules([]string{"Energizing", "Cyclopean"}, banana)

	assert.NotContains(t, effects, "Thought-Provoking")
	assert.Contains(t, effects, "Energizing")
	assert.Contains(t, effects, "Gingeritis")
}

func TestApplySubstanceRules_EffectCap(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	banana, err := catalog.Substance("Banana")
	require.NoError(t, err)

	full := []string{"Spicy", "Sedating", "Athletic", "Slippery", "Munchies", "Euphoric", "Balding", "Glowing"}
	effects := mixing.ApplySubstanceRules(full, banana)

	assert.Len(t, effects, mixing.MaxEffects)
	assert.NotContains(t, effects, "Gingeritis")
}

func TestEvaluateMix_OrderMatters(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	product, err := catalog.Product("OG Kush")
	require.NoError(t, err)

	forward, err := mixing.EvaluateMix(catalog, product, mixing.Mix{"Cuke", "Banana"})
	require.NoError(t, err)
	backward, err := mixing.EvaluateMix(catalog, product, mixing.Mix{"Banana", "Cuke"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sneaky", "Thought-Provoking", "Gingeritis"}, forward)
	assert.Equal(t, []string{"Paranoia", "Thought-Provoking", "Energizing"}, backward)
}

func TestEvaluateMix_UnknownSubstance(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	product, err := catalog.Product("Meth")
	require.NoError(t, err)

	_, err = mixing.EvaluateMix(catalog, product, mixing.Mix{"Plutonium"})

	assert.Error(t, err)
}

func TestProfit_CukeBananaOnOGKush(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	product, err := catalog.Product("OG Kush")
	require.NoError(t, err)

	// Effects: Sneaky (0.24), Thought-Provoking (0.44), Gingeritis (0.20)
	// Price: round(38 * 1.88) = 71, cost 4
	profit, err := mixing.Profit(catalog, product, mixing.Mix{"Cuke", "Banana"})
	require.NoError(t, err)

	assert.InDelta(t, 67.0, profit, 1e-9)
}

func TestCalculateFinalPrice_Rounding(t *testing.T) {
	catalog := mixing.DefaultCatalog()
	product, err := catalog.Product("OG Kush")
	require.NoError(t, err)

	// 38 * (1 + 0.10) = 41.8 rounds to 42
	price := mixing.CalculateFinalPrice(catalog, product, []string{"Calming"})

	assert.Equal(t, 42.0, price)
}

func TestCalculateFinalCost(t *testing.T) {
	catalog := mixing.DefaultCatalog()

	cost := mixing.CalculateFinalCost(catalog, mixing.Mix{"Cuke", "Horse Semen", "Cuke"})

	assert.Equal(t, 13.0, cost)
}
