package world

import "testing"

func TestNodeIndexRoundTrip(t *testing.T) {
	for x := 0; x < BlockSize; x++ {
		for y := 0; y < BlockSize; y++ {
			for z := 0; z < BlockSize; z++ {
				idx := NodeIndex(x, y, z)
				gx, gy, gz := NodeXYZ(idx)
				if gx != x || gy != y || gz != z {
					t.Fatalf("index %d: got (%d,%d,%d), want (%d,%d,%d)", idx, gx, gy, gz, x, y, z)
				}
			}
		}
	}
}

func TestSplitPosNegative(t *testing.T) {
	blk, idx := SplitPos(-1, 17, 0)
	if blk != (BlockPos{-1, 1, 0}) {
		t.Fatalf("block: got %v, want {-1 1 0}", blk)
	}
	if idx != NodeIndex(15, 1, 0) {
		t.Fatalf("index: got %d, want %d", idx, NodeIndex(15, 1, 0))
	}
}

func TestInsertReplaces(t *testing.T) {
	s := NewBlockStore()
	pos := BlockPos{1, 2, 3}

	first := &MapBlock{}
	first.Param0[0] = 7
	s.Insert(pos, first)

	second := &MapBlock{}
	second.Param0[0] = 9
	s.Insert(pos, second)

	got, ok := s.Get(pos)
	if !ok {
		t.Fatal("block missing after insert")
	}
	if got.Param0[0] != 9 {
		t.Fatalf("got content %d, want replacement 9", got.Param0[0])
	}
	if s.Len() != 1 {
		t.Fatalf("store holds %d blocks, want 1", s.Len())
	}
}

func TestGetWithNeighbors(t *testing.T) {
	s := NewBlockStore()
	center := BlockPos{0, 0, 0}
	s.Insert(center, &MapBlock{})
	s.Insert(center.Offset(FaceDirs[2]), &MapBlock{}) // +X only

	blk, nbors := s.GetWithNeighbors(center)
	if blk == nil {
		t.Fatal("center missing")
	}
	for f := range nbors {
		want := f == 2
		if (nbors[f] != nil) != want {
			t.Fatalf("neighbor %d presence = %v, want %v", f, nbors[f] != nil, want)
		}
	}
}

func TestOppositeFace(t *testing.T) {
	for f := 0; f < 6; f++ {
		o := OppositeFace(f)
		sum := [3]int16{
			FaceDirs[f][0] + FaceDirs[o][0],
			FaceDirs[f][1] + FaceDirs[o][1],
			FaceDirs[f][2] + FaceDirs[o][2],
		}
		if sum != [3]int16{} {
			t.Fatalf("face %d opposite %d does not cancel: %v", f, o, sum)
		}
	}
}
