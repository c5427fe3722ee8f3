// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// bytes on each line of a dump
const dumpWidth = 8

// FormatBytes - render data as a Go byte slice literal with the offset
// of each line, for pasting generated test vectors
func FormatBytes(name string, data []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s := []byte{", name)
	for offset := 0; offset < len(data); offset += dumpWidth {
		end := offset + dumpWidth
		if end > len(data) {
			end = len(data)
		}
		b.WriteString("\n\t")
		for _, c := range data[offset:end] {
			fmt.Fprintf(&b, "0x%02x, ", c)
		}
		fmt.Fprintf(&b, "// %04x", offset)
	}
	b.WriteString("\n}")
	return b.String()
}
