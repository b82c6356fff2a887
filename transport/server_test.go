package transport

import (
	"testing"

	"dispersion3d/engine"
)

func TestSnapshot_CoversWholeGridAndEveryRobot(t *testing.T) {
	eng := engine.NewEngine(2, 1, 2)
	eng.SetCell(0, 0, 0, engine.PlaceDoor)
	eng.SetCell(1, 0, 0, engine.PlaceEmpty)
	eng.AddRobot(1, 0, 0)

	s := NewServer(":0", eng, nil)
	snap := s.snapshot()

	if len(snap.Cells) != 2*1*2 {
		t.Fatalf("len(Cells) = %d, want %d", len(snap.Cells), 4)
	}
	if len(snap.Events) != eng.RobotCount() {
		t.Fatalf("len(Events) = %d, want %d", len(snap.Events), eng.RobotCount())
	}

	var sawDoor bool
	for _, c := range snap.Cells {
		if c.X == 0 && c.Y == 0 && c.Z == 0 {
			if c.Kind != engine.Door {
				t.Errorf("door cell kind = %v, want Door", c.Kind)
			}
			sawDoor = true
		}
	}
	if !sawDoor {
		t.Fatal("door cell missing from snapshot")
	}
}

func TestAcquireReleaseSlot_BoundsConnections(t *testing.T) {
	eng := engine.NewEngine(1, 1, 1)
	s := NewServer(":0", eng, nil)

	var acquired []int
	for i := 0; i < maxClients; i++ {
		slot := s.acquireSlot()
		if slot < 0 {
			t.Fatalf("acquireSlot failed early at %d/%d", i, maxClients)
		}
		acquired = append(acquired, slot)
	}

	if slot := s.acquireSlot(); slot != -1 {
		t.Fatalf("expected -1 once every slot is used, got %d", slot)
	}

	s.releaseSlot(acquired[0])
	if slot := s.acquireSlot(); slot != acquired[0] {
		t.Fatalf("expected released slot %d to be reusable, got %d", acquired[0], slot)
	}
}
