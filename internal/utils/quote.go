// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// SubPathSafe lists the characters kept literal when a configured sub-path is
// appended to the base URL.
const SubPathSafe = ":/?&="

const upperHex = "0123456789ABCDEF"

// Quote percent-encodes s byte by byte over its UTF-8 encoding.
//
// ASCII letters, digits, '_', '.', '-', '~' and every ASCII character listed
// in safe are copied as is; any other byte becomes "%XX" with upper-case hex
// digits. '%' is escaped unless it is listed in safe, so already-encoded input
// is encoded again.
//
// Example:
//
//	Quote("b c/d?x=1", SubPathSafe) // "b%20c/d?x=1"
func Quote(s, safe string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || (c < 0x80 && strings.IndexByte(safe, c) >= 0) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '.', c == '-', c == '~':
		return true
	}
	return false
}
