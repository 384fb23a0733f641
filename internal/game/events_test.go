package game

import "testing"

func TestEventBusDelivery(t *testing.T) {
	eb := NewEventBus()
	var died, all []Event
	eb.Subscribe(EventSnakeDied, func(e Event) { died = append(died, e) })
	eb.SubscribeAll(func(e Event) { all = append(all, e) })

	eb.Emit(Event{Type: EventSnakeDied, Player: 1, Cause: CauseWall})
	eb.Emit(Event{Type: EventPaused, Player: -1})
	eb.Emit(Event{Type: EventMatchExit, Player: -1})

	if len(died) != 1 || died[0].Cause != CauseWall {
		t.Errorf("Expected one death delivered, got %+v", died)
	}
	if len(all) != 3 {
		t.Errorf("Expected every event on the catch-all handler, got %d", len(all))
	}
}

func TestEnumStrings(t *testing.T) {
	if EventRoundOver.String() != "round-over" || EventType(99).String() != "unknown" {
		t.Error("Unexpected event type names")
	}
	if CauseTrail.String() != "trail" || CauseNone.String() != "none" {
		t.Error("Unexpected death cause names")
	}
	if StateRoundEnding.String() != "round-ending" || GameState(99).String() != "unknown" {
		t.Error("Unexpected state names")
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatal("Equal seeds must give equal sequences")
		}
	}
	r := NewRand(0)
	for i := 0; i < 1000; i++ {
		if f := r.RangeF(-3, 5); f < -3 || f >= 5 {
			t.Fatalf("RangeF out of range: %v", f)
		}
		if a := r.Angle(); a < 0 || a >= 6.2832 {
			t.Fatalf("Angle out of range: %v", a)
		}
	}
	if r.RangeF(2, 2) != 2 {
		t.Error("Empty range should return min")
	}
}
