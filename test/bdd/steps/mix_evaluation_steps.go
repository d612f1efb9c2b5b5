package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
)

type mixEvaluationContext struct {
	catalog *mixing.Catalog
	product *mixing.ProductVariety
	mix     mixing.Mix
	effects []string
	err     error
}

func (mc *mixEvaluationContext) reset() {
	mc.catalog = nil
	mc.product = nil
	mc.mix = nil
	mc.effects = nil
	mc.err = nil
}

func (mc *mixEvaluationContext) theBuiltInCatalog() error {
	mc.catalog = mixing.DefaultCatalog()
	return nil
}

func (mc *mixEvaluationContext) theProduct(name string) error {
	product, err := mc.catalog.Product(name)
	if err != nil {
		return err
	}
	mc.product = product
	return nil
}

func (mc *mixEvaluationContext) iMixIn(list string) error {
	mc.mix = parseMix(list)
	mc.effects, mc.err = mixing.EvaluateMix(mc.catalog, mc.product, mc.mix)
	return nil
}

func (mc *mixEvaluationContext) theEffectsShouldBe(expected string) error {
	if mc.err != nil {
		return fmt.Errorf("evaluation failed: %w", mc.err)
	}
	want := parseMix(expected)
	if len(mc.effects) != len(want) {
		return fmt.Errorf("expected effects %v, got %v", want, mc.effects)
	}
	for i := range want {
		if mc.effects[i] != want[i] {
			return fmt.Errorf("expected effects %v, got %v", want, mc.effects)
		}
	}
	return nil
}

func (mc *mixEvaluationContext) theSalePriceShouldBe(expected int) error {
	if mc.err != nil {
		return fmt.Errorf("evaluation failed: %w", mc.err)
	}
	price := mixing.CalculateFinalPrice(mc.catalog, mc.product, mc.effects)
	if price != float64(expected) {
		return fmt.Errorf("expected sale price %d, got %v", expected, price)
	}
	return nil
}

func (mc *mixEvaluationContext) theProfitShouldBe(expected int) error {
	profit, err := mixing.Profit(mc.catalog, mc.product, mc.mix)
	if err != nil {
		return err
	}
	if profit != float64(expected) {
		return fmt.Errorf("expected profit %d, got %v", expected, profit)
	}
	return nil
}

func (mc *mixEvaluationContext) theEvaluationShouldFail() error {
	if mc.err == nil {
		return fmt.Errorf("expected evaluation to fail, got effects %v", mc.effects)
	}
	return nil
}

func parseMix(list string) mixing.Mix {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	mix := make(mixing.Mix, 0, len(parts))
	for _, p := range parts {
		mix = append(mix, strings.TrimSpace(p))
	}
	return mix
}

// InitializeMixEvaluationScenario registers the mix evaluation steps
func InitializeMixEvaluationScenario(sc *godog.ScenarioContext) {
	mc := &mixEvaluationContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		mc.reset()
		return ctx, nil
	})

	sc.Step(`^the built-in catalog$`, mc.theBuiltInCatalog)
	sc.Step(`^the product "([^"]*)"$`, mc.theProduct)
	sc.Step(`^I mix in "([^"]*)"$`, mc.iMixIn)
	sc.Step(`^the effects should be "([^"]*)"$`, mc.theEffectsShouldBe)
	sc.Step(`^the sale price should be (\d+)$`, mc.theSalePriceShouldBe)
	sc.Step(`^the profit should be (\d+)$`, mc.theProfitShouldBe)
	sc.Step(`^the evaluation should fail$`, mc.theEvaluationShouldFail)
}
