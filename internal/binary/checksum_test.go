package binary

import "testing"

func TestSum32(t *testing.T) {
	tests := []struct {
		name    string
		initial uint32
		data    []byte
		want    uint32
	}{
		{
			name: "empty",
			data: nil,
			want: 0,
		},
		{
			name: "single word",
			data: []byte{0x01, 0x02, 0x03, 0x04},
			want: 0x01020304,
		},
		{
			name: "two words",
			data: []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x02},
			want: 3,
		},
		{
			name:    "initial value carried",
			initial: 10,
			data:    []byte{0x00, 0x00, 0x00, 0x05},
			want:    15,
		},
		{
			name:    "end-around carry",
			initial: 0xFFFFFFFF,
			data:    []byte{0x00, 0x00, 0x00, 0x01},
			want:    1,
		},
		{
			name: "all ones plus all ones",
			data: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			want: 0xFFFFFFFF,
		},
		{
			name: "zeros contribute nothing",
			data: make([]byte, 2880),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum32(tt.initial, tt.data)
			if err != nil {
				t.Fatalf("Sum32 failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Sum32 = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestSum32PartialWord(t *testing.T) {
	if _, err := Sum32(0, []byte{1, 2, 3}); err == nil {
		t.Error("Expected error for data length not a multiple of 4")
	}
}

func TestAdd32(t *testing.T) {
	if got := Add32(1, 2); got != 3 {
		t.Errorf("Add32(1, 2) = %d, want 3", got)
	}
	// Ones'-complement: x + ^x is negative zero.
	x := uint32(0x12345678)
	if got := Add32(x, ^x); got != 0xFFFFFFFF {
		t.Errorf("Add32(x, ^x) = 0x%08X, want 0xFFFFFFFF", got)
	}
	if got := Add32(0xFFFFFFFF, 1); got != 1 {
		t.Errorf("Add32 end-around carry = 0x%08X, want 1", got)
	}
}

func TestSum32MatchesAdd32Split(t *testing.T) {
	// Summing in one pass and combining two partial sums must agree.
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 7)
	}

	whole, err := Sum32(0, data)
	if err != nil {
		t.Fatalf("Sum32 failed: %v", err)
	}
	first, err := Sum32(0, data[:32])
	if err != nil {
		t.Fatalf("Sum32 failed: %v", err)
	}
	second, err := Sum32(0, data[32:])
	if err != nil {
		t.Fatalf("Sum32 failed: %v", err)
	}

	if combined := Add32(first, second); combined != whole {
		t.Errorf("Split sum 0x%08X does not match whole sum 0x%08X", combined, whole)
	}
}
