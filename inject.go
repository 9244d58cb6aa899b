package hitgraph

// syntheticPointerEvent is a single injected pointer sample or wheel event.
// Coordinates are client coordinates, exactly like real platform input.
type syntheticPointerEvent struct {
	sample PointerSample
	wheel  bool
	deltaX float64
	deltaY float64
}

// InjectPress queues a left-button press at the given client coordinates.
// Each queued event is consumed by one call to Step.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		sample: PointerSample{ClientX: x, ClientY: y, Pressed: true, Button: MouseButtonLeft},
	})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		sample: PointerSample{ClientX: x, ClientY: y, Pressed: true, Button: MouseButtonLeft},
	})
}

// InjectHover queues a pointer move with no button held.
func (in *Input) InjectHover(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		sample: PointerSample{ClientX: x, ClientY: y},
	})
}

// InjectRelease queues a left-button release at the given client coordinates.
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		sample: PointerSample{ClientX: x, ClientY: y, Pressed: false, Button: MouseButtonLeft},
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two steps.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate steps, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel event at the given client coordinates.
func (in *Input) InjectWheel(x, y, deltaX, deltaY float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		sample: PointerSample{ClientX: x, ClientY: y},
		wheel:  true,
		deltaX: deltaX,
		deltaY: deltaY,
	})
}

// Pending returns the number of queued injected events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// Step pops one injected event and feeds it through the state machine.
// Returns true if an event was consumed, in which case real input should be
// skipped for this frame.
func (in *Input) Step() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	if evt.wheel {
		in.Wheel(NativeEvent{
			ClientX:   evt.sample.ClientX,
			ClientY:   evt.sample.ClientY,
			PointerID: evt.sample.PointerID,
			DeltaX:    evt.deltaX,
			DeltaY:    evt.deltaY,
		})
		return true
	}
	in.Feed(evt.sample)
	return true
}
