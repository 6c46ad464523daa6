package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Pizza is the product every creational strategy returns.
// The store drives it through Prepare, Bake, Cut and Box in that order.
type Pizza interface {
	Name() string
	Prepare() error
	Bake() error
	Cut() error
	Box() error
}

// Creator turns a pizza type into a concrete pizza. It must either return a
// non-nil pizza or an error; it never falls back to a default pizza.
type Creator interface {
	CreatePizza(t models.PizzaType) (Pizza, error)
}

// CreatorFunc adapts a plain function to the Creator interface
type CreatorFunc func(t models.PizzaType) (Pizza, error)

// CreatePizza calls f(t)
func (f CreatorFunc) CreatePizza(t models.PizzaType) (Pizza, error) {
	return f(t)
}

// PizzaStore takes orders and runs the fixed prepare, bake, cut, box workflow
type PizzaStore interface {
	// Name identifies the store in errors, logs and events
	Name() string
	// SupportedTypes lists the pizza types the store can make
	SupportedTypes() []models.PizzaType
	// CreatePizza builds a pizza without running the workflow
	CreatePizza(t models.PizzaType) (Pizza, error)
	// OrderPizza creates a pizza and runs it through the workflow
	OrderPizza(ctx context.Context, t models.PizzaType) (Pizza, error)
}

// pizzaStore is the implementation of the PizzaStore interface
type pizzaStore struct {
	name      string
	supported []models.PizzaType
	creator   Creator
	observers []Observer
	log       logrus.FieldLogger
}

// StoreOption configures a store created by NewPizzaStore
type StoreOption func(*pizzaStore)

// WithObserver registers an observer that receives every lifecycle event
func WithObserver(o Observer) StoreOption {
	return func(s *pizzaStore) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger replaces the package logger for this store
func WithLogger(l logrus.FieldLogger) StoreOption {
	return func(s *pizzaStore) {
		if l != nil {
			s.log = l
		}
	}
}

// NewPizzaStore creates a new instance of PizzaStore around a creational strategy
func NewPizzaStore(name string, supported []models.PizzaType, creator Creator, opts ...StoreOption) PizzaStore {
	s := &pizzaStore{
		name:      name,
		supported: append([]models.PizzaType(nil), supported...),
		creator:   creator,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *pizzaStore) Name() string {
	return s.name
}

func (s *pizzaStore) SupportedTypes() []models.PizzaType {
	return append([]models.PizzaType(nil), s.supported...)
}

func (s *pizzaStore) CreatePizza(t models.PizzaType) (Pizza, error) {
	pizza, err := s.creator.CreatePizza(t)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		// A creator returning neither pizza nor error is a bug in the creator
		panic(fmt.Sprintf("%s: creator returned nil pizza for %q", s.name, t))
	}
	return pizza, nil
}

func (s *pizzaStore) OrderPizza(ctx context.Context, t models.PizzaType) (Pizza, error) {
	orderID := uuid.New()
	entry := s.log.WithFields(logrus.Fields{
		"order_id":   orderID.String(),
		"store":      s.name,
		"pizza_type": t.String(),
	}).WithContext(ctx)
	entry.WithField("status", models.StatusRequested).Debug("Order requested")

	pizza, err := s.CreatePizza(t)
	if err != nil {
		entry.WithError(err).Warn("Order rejected")
		return nil, err
	}
	entry = entry.WithField("pizza", pizza.Name())
	entry.WithField("status", models.StatusCreated).Debug("Pizza created")

	steps := []struct {
		step models.Step
		run  func() error
	}{
		{models.StepPrepare, pizza.Prepare},
		{models.StepBake, pizza.Bake},
		{models.StepCut, pizza.Cut},
		{models.StepBox, pizza.Box},
	}
	for _, st := range steps {
		if err := st.run(); err != nil {
			entry.WithError(err).WithField("step", st.step).Error("Order aborted")
			return nil, fmt.Errorf("%w: %s %q: %w", models.ErrLifecycleFailed, st.step, pizza.Name(), err)
		}
		s.emit(models.Event{
			OrderID: orderID,
			Store:   s.name,
			Step:    st.step,
			Status:  st.step.Status(),
			Pizza:   pizza.Name(),
		})
	}

	entry.WithField("status", models.StatusDelivered).Info("Order delivered")
	return pizza, nil
}

func (s *pizzaStore) emit(e models.Event) {
	for _, o := range s.observers {
		o.Observe(e)
	}
}
