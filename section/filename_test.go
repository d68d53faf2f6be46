package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildResourceFilename(t *testing.T) {
	id := [4]byte{0xAA, 0xBB, 0xCC, 0xDD}

	cases := []struct {
		name             string
		countBlock, count uint8
		want             string
	}{
		{"no suffix", 0, 0, "AA_BB_CC_DD"},
		{"count_block only", 2, 0, "AA_BB_CC_DD_2"},
		{"count_block and count", 2, 3, "AA_BB_CC_DD_2_3"},
		{"literal zero count_block", 0, 5, "AA_BB_CC_DD_0_5"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, BuildResourceFilename(id, c.countBlock, c.count))
		})
	}
}
