package services

import "unicode"

// naturalLess compares strings treating digit runs as numbers, so that
// "Suite 2" sorts before "Suite 10"
func naturalLess(s1, s2 string) bool {
	r1, r2 := []rune(s1), []rune(s2)
	i, j := 0, 0
	for i < len(r1) && j < len(r2) {
		for i < len(r1) && unicode.IsSpace(r1[i]) {
			i++
		}
		for j < len(r2) && unicode.IsSpace(r2[j]) {
			j++
		}
		if i >= len(r1) || j >= len(r2) {
			break
		}

		if unicode.IsDigit(r1[i]) && unicode.IsDigit(r2[j]) {
			si := i
			for i < len(r1) && unicode.IsDigit(r1[i]) {
				i++
			}
			sj := j
			for j < len(r2) && unicode.IsDigit(r2[j]) {
				j++
			}
			if c := compareDigits(r1[si:i], r2[sj:j]); c != 0 {
				return c < 0
			}
			continue
		}

		if r1[i] != r2[j] {
			return r1[i] < r2[j]
		}
		i++
		j++
	}
	return len(r1)-i < len(r2)-j
}

// compareDigits compares two digit runs numerically without overflowing
func compareDigits(a, b []rune) int {
	for len(a) > 1 && a[0] == '0' {
		a = a[1:]
	}
	for len(b) > 1 && b[0] == '0' {
		b = b[1:]
	}
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for k := range a {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}
			return 1
		}
	}
	return 0
}
