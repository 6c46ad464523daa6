package services

import (
	"fmt"
	"io"
	"sync"

	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/sirupsen/logrus"
)

// Observer receives one event per completed lifecycle step
type Observer interface {
	Observe(e models.Event)
}

// Recorder keeps every event it observes in arrival order
type Recorder struct {
	mu     sync.Mutex
	events []models.Event
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Observe(e models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Event(nil), r.events...)
}

// Steps returns the step of each recorded event
func (r *Recorder) Steps() []models.Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	steps := make([]models.Step, 0, len(r.events))
	for _, e := range r.events {
		steps = append(steps, e.Step)
	}
	return steps
}

// LogObserver writes each event as a structured log entry
type LogObserver struct {
	Log   logrus.FieldLogger
	Level logrus.Level
}

// NewLogObserver creates an observer logging at info level
func NewLogObserver(l logrus.FieldLogger) *LogObserver {
	return &LogObserver{Log: l, Level: logrus.InfoLevel}
}

func (o *LogObserver) Observe(e models.Event) {
	o.Log.WithFields(logrus.Fields{
		"order_id": e.OrderID.String(),
		"store":    e.Store,
		"step":     e.Step,
		"status":   e.Status,
		"pizza":    e.Pizza,
	}).Log(o.Level, fmt.Sprintf("%s %s", e.Step.Gerund(), e.Pizza))
}

// WriterObserver prints one line per event, e.g. "baking NY style cheese pizza"
type WriterObserver struct {
	w io.Writer
}

// NewWriterObserver creates an observer writing plain text lines to w
func NewWriterObserver(w io.Writer) *WriterObserver {
	return &WriterObserver{w: w}
}

func (o *WriterObserver) Observe(e models.Event) {
	// Observers cannot fail an order, so write errors are dropped
	fmt.Fprintf(o.w, "%s %s\n", e.Step.Gerund(), e.Pizza)
}
