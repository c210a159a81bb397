package crypto

import (
	"testing"
)

func makeLeafHash(b byte) [32]byte {
	var h [32]byte
	for i := range h {
		h[i] = b
	}
	return h
}

func TestBuildMerkleTree(t *testing.T) {
	leaves := [][32]byte{
		makeLeafHash(1),
		makeLeafHash(2),
		makeLeafHash(3),
		makeLeafHash(4),
	}

	tree, depth := BuildMerkleTree(leaves)
	if depth != 2 {
		t.Fatalf("expected depth 2, got %d", depth)
	}

	// Check leaves are at positions 4..7.
	for i, leaf := range leaves {
		if tree[4+i] != leaf {
			t.Fatalf("leaf %d mismatch", i)
		}
	}

	// Internal nodes should be non-zero.
	for i := 1; i <= 3; i++ {
		allZero := true
		for _, b := range tree[i] {
			if b != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			t.Fatalf("internal node %d is all zeros", i)
		}
	}
}

func TestBuildMerkleTreeNonPowerOfTwo(t *testing.T) {
	// 3 leaves should get padded to 4.
	leaves := [][32]byte{
		makeLeafHash(10),
		makeLeafHash(20),
		makeLeafHash(30),
	}

	tree, depth := BuildMerkleTree(leaves)
	if depth != 2 {
		t.Fatalf("expected depth 2, got %d", depth)
	}

	// Leaf 4 (index 7) should be zeroed.
	var zero [32]byte
	if tree[7] != zero {
		t.Fatal("padding leaf should be zero")
	}

	// Root should be non-zero.
	allZero := true
	for _, b := range tree[1] {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("root should be non-zero")
	}
}

func TestMerkleRoot(t *testing.T) {
	leaves := [][32]byte{
		makeLeafHash(1),
		makeLeafHash(2),
	}
	root := MerkleRoot(leaves)

	// Root should be non-zero.
	var zero [32]byte
	if root == zero {
		t.Fatal("root should not be zero")
	}

	// Same leaves should produce same root (deterministic).
	root2 := MerkleRoot(leaves)
	if root != root2 {
		t.Fatal("non-deterministic root")
	}

	// Different leaves should produce different root.
	leaves2 := [][32]byte{
		makeLeafHash(3),
		makeLeafHash(4),
	}
	root3 := MerkleRoot(leaves2)
	if root == root3 {
		t.Fatal("different leaves produced same root")
	}
}

func TestMerkleRootEmpty(t *testing.T) {
	// Empty leaves should produce a valid (zero-leaf-based) root.
	root := MerkleRoot(nil)
	var zero [32]byte
	// The root is hash of two zero children, so non-zero.
	if root == zero {
		t.Fatal("root of empty tree should not be the zero hash")
	}
}

func TestMerkleHashPairDeterministic(t *testing.T) {
	a := makeLeafHash(0xAA)
	b := makeLeafHash(0xBB)

	h1 := merkleHashPair(a, b)
	h2 := merkleHashPair(a, b)
	if h1 != h2 {
		t.Fatal("merkleHashPair is non-deterministic")
	}

	// Order matters.
	h3 := merkleHashPair(b, a)
	if h1 == h3 {
		t.Fatal("merkleHashPair should be order-dependent")
	}
}

func TestMerkleRootDuplicateLeaves(t *testing.T) {
	leaf := makeLeafHash(0x42)
	leaves := [][32]byte{leaf, leaf, leaf, leaf}
	root := MerkleRoot(leaves)

	// All leaves same -> unique root.
	var zero [32]byte
	if root == zero {
		t.Fatal("root of duplicate leaves should not be zero")
	}

	// Single different leaf should change root.
	leaves2 := [][32]byte{leaf, leaf, leaf, makeLeafHash(0x43)}
	root2 := MerkleRoot(leaves2)
	if root == root2 {
		t.Fatal("different leaves should produce different root")
	}
}

func TestBuildMerkleTreeSingleLeaf(t *testing.T) {
	leaves := [][32]byte{makeLeafHash(0x01)}
	tree, depth := BuildMerkleTree(leaves)

	if depth != 1 {
		t.Fatalf("expected depth 1, got %d", depth)
	}

	// tree[2] should be our leaf, tree[3] should be zero.
	if tree[2] != makeLeafHash(0x01) {
		t.Fatal("leaf not placed correctly")
	}
	var zero [32]byte
	if tree[3] != zero {
		t.Fatal("padding should be zero")
	}
}
