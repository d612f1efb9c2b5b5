package steps

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	appsearch "github.com/DrakeCaesar/scheduleI/internal/application/search"
	"github.com/DrakeCaesar/scheduleI/internal/domain/mixing"
	"github.com/DrakeCaesar/scheduleI/internal/domain/shared"
)

type searchLifecycleContext struct {
	substances []mixing.Substance
	effects    []mixing.Effect
	product    mixing.ProductVariety
	catalog    *mixing.Catalog
	engine     *appsearch.Coordinator
	secondErr  error
}

func (sc *searchLifecycleContext) reset() {
	if sc.engine != nil {
		// Stop errors if nothing is active; leftover sessions must not
		// outlive their scenario.
		_ = sc.engine.Stop()
	}
	sc.substances = nil
	sc.effects = nil
	sc.product = mixing.ProductVariety{}
	sc.catalog = nil
	sc.engine = nil
	sc.secondErr = nil
}

func (sc *searchLifecycleContext) aCatalogWithSubstances(table *messages.PickleTable) error {
	for _, row := range table.Rows[1:] {
		cells := row.Cells
		if len(cells) != 4 {
			return fmt.Errorf("expected 4 columns per substance row, got %d", len(cells))
		}
		cost, err := strconv.ParseFloat(cells[1].Value, 64)
		if err != nil {
			return fmt.Errorf("parse cost for %q: %w", cells[0].Value, err)
		}
		multiplier, err := strconv.ParseFloat(cells[3].Value, 64)
		if err != nil {
			return fmt.Errorf("parse multiplier for %q: %w", cells[0].Value, err)
		}
		sc.substances = append(sc.substances, mixing.Substance{
			Name:       cells[0].Value,
			Cost:       cost,
			BaseEffect: cells[2].Value,
		})
		sc.effects = append(sc.effects, mixing.Effect{Name: cells[2].Value, Multiplier: multiplier})
	}
	return nil
}

func (sc *searchLifecycleContext) aProductWithBasePrice(name string, basePrice int) error {
	sc.product = mixing.ProductVariety{Name: name, BasePrice: float64(basePrice)}
	sc.catalog = mixing.NewCatalog(sc.substances, sc.effects, []mixing.ProductVariety{sc.product})
	return nil
}

func (sc *searchLifecycleContext) iStartASearchToDepth(depth int) error {
	sc.engine = appsearch.NewCoordinator(sc.catalog, shared.NewRealClock(), 20*time.Millisecond)
	return sc.engine.Start(context.Background(), sc.product.Name, depth)
}

func (sc *searchLifecycleContext) iStartAnotherSearch() error {
	sc.secondErr = sc.engine.Start(context.Background(), sc.product.Name, 2)
	return nil
}

func (sc *searchLifecycleContext) theSecondStartShouldFail() error {
	if sc.secondErr == nil {
		return fmt.Errorf("expected the second start to fail")
	}
	return nil
}

func (sc *searchLifecycleContext) theSearchFinishes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err := sc.engine.Wait(ctx)
	return err
}

func (sc *searchLifecycleContext) iStopTheSearch() error {
	return sc.engine.Stop()
}

func (sc *searchLifecycleContext) iToggleTheSearch() error {
	return sc.engine.Toggle(context.Background())
}

func (sc *searchLifecycleContext) theSessionStatusShouldBe(expected string) error {
	status := sc.engine.Progress().Status
	if string(status) != expected {
		return fmt.Errorf("expected status %s, got %s", expected, status)
	}
	return nil
}

// theSessionStatusShouldBecome polls: control signals reach workers at
// sequence checkpoints, not instantly.
func (sc *searchLifecycleContext) theSessionStatusShouldBecome(expected string) error {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if string(sc.engine.Progress().Status) == expected {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("expected status to become %s, still %s", expected, sc.engine.Progress().Status)
}

func (sc *searchLifecycleContext) theBestMixShouldBe(list string, profit int) error {
	best := sc.engine.BestResult()
	want := parseMix(list)
	if len(best.Mix) != len(want) {
		return fmt.Errorf("expected mix %v, got %v", want, best.Mix)
	}
	for i := range want {
		if best.Mix[i] != want[i] {
			return fmt.Errorf("expected mix %v, got %v", want, best.Mix)
		}
	}
	if best.Profit != float64(profit) {
		return fmt.Errorf("expected profit %d, got %v", profit, best.Profit)
	}
	return nil
}

func (sc *searchLifecycleContext) theProgressShouldReport(processed, grandTotal int) error {
	summary := sc.engine.Progress().Summary
	if summary.Processed != uint64(processed) || summary.GrandTotal != uint64(grandTotal) {
		return fmt.Errorf("expected %d of %d sequences, got %d of %d",
			processed, grandTotal, summary.Processed, summary.GrandTotal)
	}
	return nil
}

// InitializeSearchLifecycleScenario registers the search lifecycle steps
func InitializeSearchLifecycleScenario(scenario *godog.ScenarioContext) {
	sc := &searchLifecycleContext{}

	scenario.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	scenario.Step(`^a catalog with substances:$`, sc.aCatalogWithSubstances)
	scenario.Step(`^a product "([^"]*)" with base price (\d+)$`, sc.aProductWithBasePrice)
	scenario.Step(`^I start a search to depth (\d+)$`, sc.iStartASearchToDepth)
	scenario.Step(`^I start another search$`, sc.iStartAnotherSearch)
	scenario.Step(`^the second start should fail$`, sc.theSecondStartShouldFail)
	scenario.Step(`^the search finishes$`, sc.theSearchFinishes)
	scenario.Step(`^I stop the search$`, sc.iStopTheSearch)
	scenario.Step(`^I toggle the search$`, sc.iToggleTheSearch)
	scenario.Step(`^the session status should be "([^"]*)"$`, sc.theSessionStatusShouldBe)
	scenario.Step(`^the session status should become "([^"]*)"$`, sc.theSessionStatusShouldBecome)
	scenario.Step(`^the best mix should be "([^"]*)" with profit (\d+)$`, sc.theBestMixShouldBe)
	scenario.Step(`^the progress should report (\d+) of (\d+) sequences$`, sc.theProgressShouldReport)
}
