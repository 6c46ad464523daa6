package abstractfactory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// countingFactory wraps a real ingredient factory and counts calls per category
type countingFactory struct {
	ingredients.Factory
	calls map[string]int
}

func newCountingFactory(f ingredients.Factory) *countingFactory {
	return &countingFactory{Factory: f, calls: make(map[string]int)}
}

func (c *countingFactory) CreateDough() models.Dough {
	c.calls["dough"]++
	return c.Factory.CreateDough()
}

func (c *countingFactory) CreateSauce() models.Sauce {
	c.calls["sauce"]++
	return c.Factory.CreateSauce()
}

func (c *countingFactory) CreateCheese() models.Cheese {
	c.calls["cheese"]++
	return c.Factory.CreateCheese()
}

func (c *countingFactory) CreateVeggies() []models.Veggie {
	c.calls["veggies"]++
	return c.Factory.CreateVeggies()
}

func (c *countingFactory) CreatePepperoni() models.Pepperoni {
	c.calls["pepperoni"]++
	return c.Factory.CreatePepperoni()
}

func (c *countingFactory) CreateClam() models.Clams {
	c.calls["clams"]++
	return c.Factory.CreateClam()
}

func quietStore(build func(...services.StoreOption) services.PizzaStore, opts ...services.StoreOption) services.PizzaStore {
	logger, _ := test.NewNullLogger()
	return build(append([]services.StoreOption{services.WithLogger(logger)}, opts...)...)
}

func ingredientsOf(t require.TestingT, p services.Pizza) models.IngredientSet {
	pizza, ok := p.(*Pizza)
	require.True(t, ok, "expected *Pizza, got %T", p)
	set, ok := pizza.Ingredients()
	require.True(t, ok, "pizza %q was not prepared", pizza.Name())
	return set
}

func TestNYStoreCheesePizza(t *testing.T) {
	store := quietStore(NewNYPizzaStore)

	pizza, err := store.OrderPizza(context.Background(), models.PizzaTypeCheese)
	require.NoError(t, err)
	assert.Equal(t, "NY style cheese pizza", pizza.Name())

	set := ingredientsOf(t, pizza)
	assert.Equal(t, models.ThinCrustDough, set.Dough)
	assert.Equal(t, models.MarinaraSauce, set.Sauce)
	assert.Equal(t, models.ReggianoCheese, set.Cheese)
	assert.ElementsMatch(t, []models.Veggie{models.Garlic, models.Onion, models.Mushroom, models.RedPepper}, set.Veggies)
	assert.Empty(t, set.Pepperoni)
	assert.Empty(t, set.Clams)
}

func TestChicagoStoreClamPizza(t *testing.T) {
	store := quietStore(NewChicagoPizzaStore)

	pizza, err := store.OrderPizza(context.Background(), models.PizzaTypeClam)
	require.NoError(t, err)
	assert.Equal(t, "Chicago style clam pizza", pizza.Name())

	set := ingredientsOf(t, pizza)
	assert.Equal(t, models.FrozenClams, set.Clams)
	assert.Equal(t, models.MozzarellaCheese, set.Cheese)
	assert.Equal(t, models.ThickCrustDough, set.Dough)
}

func TestPrepareRequestsOnlyNeededCategories(t *testing.T) {
	testCases := []struct {
		kind     models.PizzaType
		expected map[string]int
	}{
		{models.PizzaTypeCheese, map[string]int{"dough": 1, "sauce": 1, "cheese": 1, "veggies": 1}},
		{models.PizzaTypePepperoni, map[string]int{"dough": 1, "sauce": 1, "cheese": 1, "pepperoni": 1}},
		{models.PizzaTypeClam, map[string]int{"dough": 1, "sauce": 1, "cheese": 1, "clams": 1}},
	}

	for _, tt := range testCases {
		t.Run(tt.kind.String(), func(t *testing.T) {
			factory := newCountingFactory(ingredients.Chicago)
			pizza, err := NewPizza(tt.kind, factory)
			require.NoError(t, err)

			_, prepared := pizza.Ingredients()
			assert.False(t, prepared)
			assert.Empty(t, factory.calls, "no ingredients before prepare")

			require.NoError(t, pizza.Prepare())
			assert.Equal(t, tt.expected, factory.calls)
		})
	}
}

func TestNewPizzaValidation(t *testing.T) {
	_, err := NewPizza(models.PizzaTypeCheese, nil)
	assert.Error(t, err)

	_, err = NewPizza(models.PizzaTypeVeggie, ingredients.NY)
	assert.True(t, errors.Is(err, models.ErrUnsupportedPizzaType))
}

func TestPreparedPizzaIsFrozen(t *testing.T) {
	factory := newCountingFactory(ingredients.NY)
	pizza, err := NewPizza(models.PizzaTypePepperoni, factory)
	require.NoError(t, err)
	pizza.SetName("NY style pepperoni pizza")

	require.NoError(t, pizza.Prepare())
	first, _ := pizza.Ingredients()

	pizza.SetName("renamed")
	require.NoError(t, pizza.Prepare())
	second, _ := pizza.Ingredients()

	assert.Equal(t, "NY style pepperoni pizza", pizza.Name())
	assert.Equal(t, first, second)
	assert.Equal(t, 1, factory.calls["dough"], "second prepare pulls nothing")
}

func TestRegionalStoreNeedsKnownRegion(t *testing.T) {
	assert.Panics(t, func() { newRegionalStore("Detroit Pizza Store", "Detroit") })
}

func TestUnsupportedTypeEmitsNothing(t *testing.T) {
	for _, build := range []func(...services.StoreOption) services.PizzaStore{NewNYPizzaStore, NewChicagoPizzaStore} {
		rec := services.NewRecorder()
		store := quietStore(build, services.WithObserver(rec))

		pizza, err := store.OrderPizza(context.Background(), models.PizzaTypeVeggie)
		assert.Nil(t, pizza)
		var unsupported *models.UnsupportedPizzaTypeError
		require.True(t, errors.As(err, &unsupported))
		assert.Equal(t, store.Name(), unsupported.Factory)
		assert.Empty(t, rec.Events())
	}
}

func TestDescribe(t *testing.T) {
	pizza, err := quietStore(NewNYPizzaStore).OrderPizza(context.Background(), models.PizzaTypePepperoni)
	require.NoError(t, err)

	described := pizza.(*Pizza).Describe()
	assert.Contains(t, described, "Pizza: NY style pepperoni pizza")
	assert.Contains(t, described, "pepperoni: sliced")
	assert.Contains(t, described, "dough: thin-crust")
}

func TestStoresProperties(t *testing.T) {
	stores := []struct {
		build  func(...services.StoreOption) services.PizzaStore
		region models.Region
	}{
		{NewNYPizzaStore, models.RegionNY},
		{NewChicagoPizzaStore, models.RegionChicago},
	}

	rapid.Check(t, func(r *rapid.T) {
		idx := rapid.IntRange(0, len(stores)-1).Draw(r, "store")
		pt := rapid.SampledFrom(models.AllPizzaTypes).Draw(r, "pizzaType")

		rec := services.NewRecorder()
		store := quietStore(stores[idx].build, services.WithObserver(rec))
		pizza, err := store.OrderPizza(context.Background(), pt)

		supported := false
		for _, s := range store.SupportedTypes() {
			if s == pt {
				supported = true
			}
		}

		if !supported {
			if !errors.Is(err, models.ErrUnsupportedPizzaType) || pizza != nil {
				r.Fatalf("expected unsupported error for %s, got pizza=%v err=%v", pt, pizza, err)
			}
			if len(rec.Events()) != 0 {
				r.Fatalf("rejected order emitted events: %v", rec.Events())
			}
			return
		}

		if err != nil || pizza == nil {
			r.Fatalf("supported type %s failed: %v", pt, err)
		}
		region := stores[idx].region
		if want := region.Style(); !strings.Contains(pizza.Name(), want) {
			r.Fatalf("name %q lacks regional marker %q", pizza.Name(), want)
		}
		set := ingredientsOf(r, pizza)
		if !set.ConsistentWith(region) {
			r.Fatalf("%s pizza has ingredients from %v", region, set.Regions())
		}
		steps := rec.Steps()
		if len(steps) != len(models.LifecycleSteps) {
			r.Fatalf("expected %v, got %v", models.LifecycleSteps, steps)
		}
		for i, s := range steps {
			if s != models.LifecycleSteps[i] {
				r.Fatalf("expected %v, got %v", models.LifecycleSteps, steps)
			}
		}
	})
}
