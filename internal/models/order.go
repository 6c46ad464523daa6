package models

import (
	"github.com/google/uuid"
)

// Step is one stage of the fixed order workflow
type Step string

const (
	StepPrepare Step = "prepare"
	StepBake    Step = "bake"
	StepCut     Step = "cut"
	StepBox     Step = "box"
)

// LifecycleSteps is the fixed order in which every pizza is processed
var LifecycleSteps = []Step{StepPrepare, StepBake, StepCut, StepBox}

// OrderStatus tracks how far an order has progressed
type OrderStatus string

const (
	StatusRequested OrderStatus = "requested"
	StatusCreated   OrderStatus = "created"
	StatusPrepared  OrderStatus = "prepared"
	StatusBaked     OrderStatus = "baked"
	StatusCut       OrderStatus = "cut"
	StatusBoxed     OrderStatus = "boxed"
	StatusDelivered OrderStatus = "delivered"
)

// Status returns the order status reached once the step has completed
func (s Step) Status() OrderStatus {
	switch s {
	case StepPrepare:
		return StatusPrepared
	case StepBake:
		return StatusBaked
	case StepCut:
		return StatusCut
	case StepBox:
		return StatusBoxed
	}
	return ""
}

// Gerund returns the progressive form used in output, e.g. "baking"
func (s Step) Gerund() string {
	switch s {
	case StepPrepare:
		return "preparing"
	case StepBake:
		return "baking"
	case StepCut:
		return "cutting"
	case StepBox:
		return "boxing"
	}
	return string(s)
}

// Event is emitted once for every lifecycle step a pizza completes
type Event struct {
	OrderID uuid.UUID   `json:"order_id"`
	Store   string      `json:"store"`
	Step    Step        `json:"step"`
	Status  OrderStatus `json:"status"`
	Pizza   string      `json:"pizza"`
}
