package blueprint

import (
	"math"

	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

const (
	// transportEpsilon is the threshold above which a transport kind is
	// considered in use by a recipe.
	transportEpsilon = 1e-5

	// integralityEpsilon is the tolerance for treating a machine count
	// as already integral.
	integralityEpsilon = 1e-4
)

// Constants holds the numeric configuration the sizing algorithm runs
// against: transport line capacities and the batch size in which
// machines of each building type are conventionally built.
type Constants struct {
	BeltItemsPerMinute float64
	PipeItemsPerMinute float64

	// PreferredMultiples maps building type to preferred machine
	// multiple. A building absent from this map cannot be sized.
	PreferredMultiples map[string]float64
}

// PreferredMultiple looks up the preferred machine multiple for a
// building type.
func (c Constants) PreferredMultiple(building string) (float64, error) {
	m, ok := c.PreferredMultiples[building]
	if !ok {
		return 0, &ErrNoPreferredMultiple{Building: building}
	}
	return m, nil
}

// Suggestion is a concrete build plan for one recipe: how many
// blueprint boxes of the preferred machine multiple to place, at what
// clock, and what they draw.
type Suggestion struct {
	UseBelt bool
	UsePipe bool

	// Machines of this recipe that fit on one belt / one pipe.
	MachinesPerBelt float64
	MachinesPerPipe float64

	// Boxes is the integral number of blueprint instances to build.
	Boxes float64

	// PreferredMultiple is the machine count per blueprint instance.
	PreferredMultiple float64

	// Clock is the per-machine clock fraction in (0, 1] that preserves
	// the transport-limited throughput at the integral machine count.
	Clock float64

	PowerUsageMW float64
}

// Machines returns the total machine count across all boxes.
func (s *Suggestion) Machines() float64 {
	return s.Boxes * s.PreferredMultiple
}

// ThroughputModifier scales a recipe's per-minute quantities to the
// whole suggested build.
func (s *Suggestion) ThroughputModifier() float64 {
	return s.Clock * s.Boxes * s.PreferredMultiple
}

// Suggest sizes a build for the recipe: the binding transport line
// determines how many machines one line can feed, the preferred
// multiple rounds that up to whole blueprint boxes, and the clock is
// lowered so throughput still matches the transport limit exactly.
func Suggest(r *production.Recipe, c Constants) (*Suggestion, error) {
	maxBelt, maxPipe := r.MaxTransportRates()
	useBelt := maxBelt >= transportEpsilon
	usePipe := maxPipe >= transportEpsilon

	mPerBelt := c.BeltItemsPerMinute / maxBelt
	mPerPipe := c.PipeItemsPerMinute / maxPipe

	var mPerTransport float64
	switch {
	case useBelt && usePipe:
		mPerTransport = math.Min(mPerBelt, mPerPipe)
	case useBelt:
		mPerTransport = mPerBelt
	default:
		mPerTransport = mPerPipe
	}

	prefMult, err := c.PreferredMultiple(r.Building)
	if err != nil {
		return nil, err
	}

	boxes := mPerTransport / prefMult
	clock := 1.0
	if frac := boxes - math.Floor(boxes); frac > integralityEpsilon {
		adjusted := math.Ceil(boxes)
		clock = boxes / adjusted
		boxes = adjusted
	} else {
		boxes = math.Floor(boxes)
	}

	power, err := PowerUsageMW(r.Building, boxes*prefMult, clock)
	if err != nil {
		return nil, err
	}

	return &Suggestion{
		UseBelt:           useBelt,
		UsePipe:           usePipe,
		MachinesPerBelt:   mPerBelt,
		MachinesPerPipe:   mPerPipe,
		Boxes:             boxes,
		PreferredMultiple: prefMult,
		Clock:             clock,
		PowerUsageMW:      power,
	}, nil
}
