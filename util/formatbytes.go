// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// bytes per line of FormatBytes output
const bytesPerLine = 8

// FormatBytes - for dumping the expected hex used by some test
// routines, output is a Go declaration of name
func FormatBytes(name string, data []byte) string {
	var s strings.Builder
	s.WriteString(name)
	s.WriteString(" := []byte{")
	if 0 == len(data) {
		s.WriteString("}")
		return s.String()
	}
	for i := 0; i < len(data); i += 1 {
		if 0 == i%bytesPerLine {
			s.WriteString("\n\t")
		}
		fmt.Fprintf(&s, "0x%02x, ", data[i])
	}
	s.WriteString("\n}")
	return s.String()
}
