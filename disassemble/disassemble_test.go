package disassemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type flat map[uint16]uint8

func (f flat) Peek(addr uint16) uint8 {
	return f[addr]
}

func TestStep(t *testing.T) {
	for _, tc := range []struct {
		name string
		pc   uint16
		mem  flat
		want string
		size int
	}{
		{
			name: "immediate",
			pc:   0x8000,
			mem:  flat{0x8000: 0xA9, 0x8001: 0x50},
			want: "$8000: A9 50     LDA #$50",
			size: 2,
		},
		{
			name: "absolute",
			pc:   0x8000,
			mem:  flat{0x8000: 0x8D, 0x8001: 0x34, 0x8002: 0x12},
			want: "$8000: 8D 34 12  STA $1234",
			size: 3,
		},
		{
			name: "absolute indexed",
			pc:   0xC000,
			mem:  flat{0xC000: 0xBD, 0xC001: 0xFF, 0xC002: 0x12},
			want: "$C000: BD FF 12  LDA $12FF,X",
			size: 3,
		},
		{
			name: "indirect",
			pc:   0x8000,
			mem:  flat{0x8000: 0x6C, 0x8001: 0xFF, 0x8002: 0x10},
			want: "$8000: 6C FF 10  JMP ($10FF)",
			size: 3,
		},
		{
			name: "zero page indexed",
			pc:   0x8000,
			mem:  flat{0x8000: 0xB5, 0x8001: 0x12},
			want: "$8000: B5 12     LDA $12,X",
			size: 2,
		},
		{
			name: "indirect indexed",
			pc:   0x8000,
			mem:  flat{0x8000: 0xB1, 0x8001: 0x44},
			want: "$8000: B1 44     LDA ($44),Y",
			size: 2,
		},
		{
			name: "implied",
			pc:   0x8000,
			mem:  flat{0x8000: 0xEA},
			want: "$8000: EA        NOP",
			size: 1,
		},
		{
			name: "accumulator",
			pc:   0x8000,
			mem:  flat{0x8000: 0x0A},
			want: "$8000: 0A        ASL A",
			size: 1,
		},
		{
			name: "branch forward",
			pc:   0x80FE,
			mem:  flat{0x80FE: 0xF0, 0x80FF: 0x02},
			want: "$80FE: F0 02     BEQ $8102",
			size: 2,
		},
		{
			name: "branch backward",
			pc:   0x8005,
			mem:  flat{0x8005: 0xD0, 0x8006: 0xFA},
			want: "$8005: D0 FA     BNE $8001",
			size: 2,
		},
		{
			name: "undocumented",
			pc:   0x8000,
			mem:  flat{0x8000: 0xA7, 0x8001: 0x20},
			want: "$8000: A7 20     LAX $20",
			size: 2,
		},
		{
			name: "halt",
			pc:   0x8000,
			mem:  flat{0x8000: 0x02},
			want: "$8000: 02        KIL",
			size: 1,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, n := Step(tc.pc, tc.mem)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.size, n)
		})
	}
}

func TestListing(t *testing.T) {
	// LDA #$01; STA $0200; then two data bytes.
	buf := []uint8{0xA9, 0x01, 0x8D, 0x00, 0x02, 0xDE, 0xAD}
	mask := []bool{true, true, true, true, true, false, false}
	want := []string{
		"$8000: A9 01     LDA #$01",
		"$8002: 8D 00 02  STA $0200",
		"$8005: DE        .DB $DE",
		"$8006: AD        .DB $AD",
	}
	assert.Equal(t, want, Listing(buf, 0x8000, mask))
}

func TestListingNilMaskDecodesAll(t *testing.T) {
	buf := []uint8{0xEA, 0xA9, 0x10}
	want := []string{
		"$8000: EA        NOP",
		"$8001: A9 10     LDA #$10",
	}
	assert.Equal(t, want, Listing(buf, 0x8000, nil))
}

func TestListingTruncatedInstruction(t *testing.T) {
	// An executed opcode whose operands fall outside the window
	// degrades to a data byte.
	buf := []uint8{0x4C}
	assert.Equal(t, []string{"$8000: 4C        .DB $4C"}, Listing(buf, 0x8000, []bool{true}))
}

func TestListingDataByteMidStream(t *testing.T) {
	// A cleared mask bit inside otherwise executed code keeps the
	// stream aligned byte by byte.
	buf := []uint8{0xEA, 0xFF, 0xEA}
	mask := []bool{true, false, true}
	want := []string{
		"$8000: EA        NOP",
		"$8001: FF        .DB $FF",
		"$8002: EA        NOP",
	}
	assert.Equal(t, want, Listing(buf, 0x8000, mask))
}
