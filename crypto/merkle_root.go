// Binary Merkle tree root computation, as used to recompute the SSZ
// root of a beacon block header and body from their field roots.
//
// This package only ever needs the full root of a small, fixed-size leaf
// set (the header-binding check in internal/electra recomputes a whole
// subtree and compares it against a value claimed elsewhere) — never a
// proof over a subset of leaves against an externally supplied root, so
// the generalized-index multi-proof machinery a general SSZ proving
// library would need has no caller here and was cut.

package crypto

// MerkleRoot computes the Merkle root of a set of leaves, using the
// complete-binary-tree / generalized-index convention: leaf count is
// rounded up to the next power of two and zero-padded.
func MerkleRoot(leaves [][32]byte) [32]byte {
	tree, _ := BuildMerkleTree(leaves)
	if len(tree) < 2 {
		return [32]byte{}
	}
	return tree[1]
}

// BuildMerkleTree constructs a binary Merkle tree from the given leaves
// and returns the flat tree array indexed by generalized index (tree[1]
// is the root, tree[2]/tree[3] its children, and so on). The leaf count
// is rounded up to the next power of two and zero-padded.
func BuildMerkleTree(leaves [][32]byte) ([][32]byte, uint) {
	n := len(leaves)
	if n == 0 {
		n = 1
	}
	depth := uint(0)
	size := 1
	for size < n {
		size *= 2
		depth++
	}
	if depth == 0 && n > 0 {
		depth = 1
		size = 2
	}

	treeSize := 2 * size
	tree := make([][32]byte, treeSize)

	for i := 0; i < len(leaves); i++ {
		tree[size+i] = leaves[i]
	}

	for i := size - 1; i >= 1; i-- {
		tree[i] = merkleHashPair(tree[2*i], tree[2*i+1])
	}

	return tree, depth
}

// merkleHashPair computes a Merkle tree parent hash from its two
// children: Keccak256(left || right).
func merkleHashPair(left, right [32]byte) [32]byte {
	data := make([]byte, 64)
	copy(data[:32], left[:])
	copy(data[32:], right[:])
	h := Keccak256(data)
	var result [32]byte
	copy(result[:], h)
	return result
}
