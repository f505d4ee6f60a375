// Package merkle builds the Keccak-256 Merkle tree that commits a reward list.
//
// Leaves are keccak256(keccak256(abi.encode(address, uint256))) and inner
// nodes hash their two children in ascending byte order, so proofs verify
// with OpenZeppelin's MerkleProof. A node without a sibling moves up a level
// unchanged. A competition tree ends with a leaf over abi.encode(string id),
// which keeps equal reward lists of different competitions apart.
package merkle

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

var (
	ErrEmptyTree     = errors.New("merkle tree has no leaves")
	ErrInvalidAmount = errors.New("leaf amount must be a non-negative uint256")
	ErrLeafNotFound  = errors.New("leaf not found")
	ErrInvalidNodes  = errors.New("invalid tree nodes")
)

var leafArguments = func() abi.Arguments {
	address, _ := abi.NewType("address", "", nil)
	uint256, _ := abi.NewType("uint256", "", nil)
	return abi.Arguments{{Type: address}, {Type: uint256}}
}()

var competitionArguments = func() abi.Arguments {
	str, _ := abi.NewType("string", "", nil)
	return abi.Arguments{{Type: str}}
}()

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

type Leaf struct {
	Address common.Address
	Amount  *big.Int
}

// Node is a stored tree node. Level 0 holds the leaves.
type Node struct {
	Level int
	Index int
	Hash  common.Hash
}

func keccak(data ...[]byte) common.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out common.Hash
	h.Sum(out[:0])
	return out
}

func LeafHash(leaf Leaf) (common.Hash, error) {
	if leaf.Amount == nil || leaf.Amount.Sign() < 0 || leaf.Amount.Cmp(maxUint256) > 0 {
		return common.Hash{}, fmt.Errorf("%w: %v", ErrInvalidAmount, leaf.Amount)
	}
	encoded, err := leafArguments.Pack(leaf.Address, leaf.Amount)
	if err != nil {
		return common.Hash{}, fmt.Errorf("encode leaf: %w", err)
	}
	inner := keccak(encoded)
	return keccak(inner.Bytes()), nil
}

// CompetitionLeafHash is the leaf binding a tree to its competition. Its
// encoding is longer than a reward leaf, so it can never be claimed.
func CompetitionLeafHash(competitionID string) (common.Hash, error) {
	if competitionID == "" {
		return common.Hash{}, errors.New("competition id is required")
	}
	encoded, err := competitionArguments.Pack(competitionID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("encode competition leaf: %w", err)
	}
	inner := keccak(encoded)
	return keccak(inner.Bytes()), nil
}

func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		a, b = b, a
	}
	return keccak(a.Bytes(), b.Bytes())
}

type Tree struct {
	levels [][]common.Hash
}

// New builds a tree over the leaves in the given order.
func New(leaves []Leaf) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	hashes, err := leafHashes(leaves)
	if err != nil {
		return nil, err
	}
	return fromLeafHashes(hashes), nil
}

// NewForCompetition builds a tree over the leaves followed by the
// competition leaf. Reward leaves keep their indexes; without any the
// competition leaf is the root.
func NewForCompetition(competitionID string, leaves []Leaf) (*Tree, error) {
	hashes, err := leafHashes(leaves)
	if err != nil {
		return nil, err
	}
	binding, err := CompetitionLeafHash(competitionID)
	if err != nil {
		return nil, err
	}
	return fromLeafHashes(append(hashes, binding)), nil
}

func leafHashes(leaves []Leaf) ([]common.Hash, error) {
	hashes := make([]common.Hash, len(leaves), len(leaves)+1)
	for i, l := range leaves {
		h, err := LeafHash(l)
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		hashes[i] = h
	}
	return hashes, nil
}

func fromLeafHashes(hashes []common.Hash) *Tree {
	levels := [][]common.Hash{hashes}
	for current := hashes; len(current) > 1; {
		next := make([]common.Hash, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 == len(current) {
				next = append(next, current[i])
				continue
			}
			next = append(next, hashPair(current[i], current[i+1]))
		}
		levels = append(levels, next)
		current = next
	}
	return &Tree{levels: levels}
}

// FromNodes rebuilds a tree from stored nodes and checks that every inner
// node matches its children.
func FromNodes(nodes []Node) (*Tree, error) {
	var leaves []common.Hash
	stored := map[[2]int]common.Hash{}
	for _, n := range nodes {
		stored[[2]int{n.Level, n.Index}] = n.Hash
	}
	for i := 0; ; i++ {
		h, ok := stored[[2]int{0, i}]
		if !ok {
			break
		}
		leaves = append(leaves, h)
	}
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	tree := fromLeafHashes(leaves)
	if len(tree.Nodes()) != len(nodes) {
		return nil, fmt.Errorf("%w: expected %d nodes, got %d", ErrInvalidNodes, len(tree.Nodes()), len(nodes))
	}
	for _, n := range tree.Nodes() {
		if stored[[2]int{n.Level, n.Index}] != n.Hash {
			return nil, fmt.Errorf("%w: node %d/%d does not match its children", ErrInvalidNodes, n.Level, n.Index)
		}
	}
	return tree, nil
}

func (t *Tree) Root() common.Hash {
	return t.levels[len(t.levels)-1][0]
}

func (t *Tree) Leaves() []common.Hash {
	return append([]common.Hash(nil), t.levels[0]...)
}

// Nodes lists every node, level by level.
func (t *Tree) Nodes() []Node {
	var nodes []Node
	for level, hashes := range t.levels {
		for i, h := range hashes {
			nodes = append(nodes, Node{Level: level, Index: i, Hash: h})
		}
	}
	return nodes
}

// Proof returns the sibling hashes from the leaf at index up to the root.
func (t *Tree) Proof(index int) ([]common.Hash, error) {
	if index < 0 || index >= len(t.levels[0]) {
		return nil, fmt.Errorf("%w: index %d", ErrLeafNotFound, index)
	}
	proof := []common.Hash{}
	for _, level := range t.levels[:len(t.levels)-1] {
		sibling := index ^ 1
		if sibling < len(level) {
			proof = append(proof, level[sibling])
		}
		index /= 2
	}
	return proof, nil
}

func Verify(proof []common.Hash, root, leaf common.Hash) bool {
	h := leaf
	for _, p := range proof {
		h = hashPair(h, p)
	}
	return h == root
}
