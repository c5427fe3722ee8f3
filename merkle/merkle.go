// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// FullMerkleTree - compute all levels of the tree
//
// structure is:
//   1. N * leaf digests
//   2. level 1..m digests
//   3. merkle root digest
//
// a level with an odd number of nodes pairs its last node with itself
func FullMerkleTree(leaves []Digest) []Digest {

	leafCount := len(leaves)
	if 0 == leafCount {
		return []Digest{{}}
	}

	totalLength := 1 // all leaves + space for the final root
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]Digest, totalLength)
	copy(tree[:], leaves)

	n := leafCount
	j := 0
	for workLength := leafCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			b := make([]byte, 0, 2*DigestLength)
			b = append(b, tree[j][:]...)
			b = append(b, tree[k][:]...)
			tree[n] = NewDigest(b)
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - the root of the tree over the leaves
//
// no leaves gives the zero digest and a single leaf is its own root
func Root(leaves []Digest) Digest {
	tree := FullMerkleTree(leaves)
	return tree[len(tree)-1]
}
