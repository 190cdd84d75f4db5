package elemkind

import "testing"

func TestElemSize(t *testing.T) {
	cases := []struct {
		k    Kind
		want uint64
	}{
		{Int32, 4},
		{Bool, 4},
		{Float64, 8},
		{Byte, 1},
		{Complex128, 16},
		{StringHandle, 8},
		{OpaqueHandle, 8},
	}
	for _, c := range cases {
		if got := c.k.ElemSize(); got != c.want {
			t.Errorf("%s.ElemSize() = %d, want %d", c.k, got, c.want)
		}
	}
}
