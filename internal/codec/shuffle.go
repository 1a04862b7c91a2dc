package codec

import "github.com/boxkit/boxkit/internal/format"

// blockOrders lists all 24 orderings of the four logical blocks. The table is
// part of the format: entry k is the physical layout used when PID % 24 == k,
// and blockOrders[k][p] is the logical block stored at physical position p
// (0 = Growth, 1 = Attacks, 2 = Condition, 3 = Misc). The orderings are the
// lexicographic permutations of {0,1,2,3}.
var blockOrders = [format.PermutationCount][format.CryptBlockCount]int{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 2, 3, 1}, {0, 3, 1, 2}, {0, 3, 2, 1},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {1, 2, 0, 3}, {1, 2, 3, 0}, {1, 3, 0, 2}, {1, 3, 2, 0},
	{2, 0, 1, 3}, {2, 0, 3, 1}, {2, 1, 0, 3}, {2, 1, 3, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{3, 0, 1, 2}, {3, 0, 2, 1}, {3, 1, 0, 2}, {3, 1, 2, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// unshuffle reorders the 48-byte decrypted region from physical into logical
// block order.
func unshuffle(data []byte, pid uint32) [format.CryptBlockCount][]byte {
	order := blockOrders[pid%format.PermutationCount]
	var logical [format.CryptBlockCount][]byte
	for p, l := range order {
		logical[l] = data[p*format.CryptBlockSize : (p+1)*format.CryptBlockSize]
	}
	return logical
}

// shuffle writes the four logical blocks into dst in the physical order
// selected by pid.
func shuffle(dst []byte, logical [format.CryptBlockCount][]byte, pid uint32) {
	order := blockOrders[pid%format.PermutationCount]
	for p, l := range order {
		copy(dst[p*format.CryptBlockSize:(p+1)*format.CryptBlockSize], logical[l])
	}
}
