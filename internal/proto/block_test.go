package proto

import (
	"testing"

	"mini-mt/internal/world"
)

func testBlock() *world.MapBlock {
	blk := &world.MapBlock{}
	for i := range blk.Param0 {
		blk.Param0[i] = uint16(i % 7)
		blk.Param1[i] = uint8(i % 16)
	}
	return blk
}

func TestDecodeBlockVersions(t *testing.T) {
	want := testBlock()
	for _, version := range []uint8{VersionZlib, VersionZstd} {
		payload, err := EncodeBlock(want, version)
		if err != nil {
			t.Fatalf("encode v%d: %v", version, err)
		}
		got, err := DecodeBlock(payload)
		if err != nil {
			t.Fatalf("decode v%d: %v", version, err)
		}
		if got.Param0 != want.Param0 || got.Param1 != want.Param1 {
			t.Fatalf("v%d: decoded block differs from input", version)
		}
	}
}

func TestDecodeBlockRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		nil,
		{VersionZlib, 0, 0},
		{VersionZlib, 0, 0, 0, 2, 2, 0xde, 0xad},
		{77, 0, 0, 0, 2, 2},
		{VersionZstd, 0, 0, 0, 1, 1},
	}
	for i, payload := range cases {
		if _, err := DecodeBlock(payload); err == nil {
			t.Fatalf("case %d: expected error, got none", i)
		}
	}
}

func BenchmarkDecodeBlock(b *testing.B) {
	payload, err := EncodeBlock(testBlock(), VersionZstd)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeBlock(payload); err != nil {
			b.Fatal(err)
		}
	}
}
