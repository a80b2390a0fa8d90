// Package distance implements the Damerau-Levenshtein edit distance kernel
// that pkg/bktree keys its metric tree on, extended with a wildcard
// character that matches any single letter at zero cost.
package distance

// Wildcard is the query-only character that matches any lowercase letter
// at zero substitution cost. Stored words never contain it.
const Wildcard = '*'

// alphabetSize covers 'a'-'z' plus the wildcard.
const alphabetSize = 27

// charIndex maps a byte to its position in the DL bookkeeping arrays.
// Lowercase letters map to 0-25, the wildcard maps to 26, and anything
// else maps to -1 (undefined; callers must sanitise input upstream).
func charIndex(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c == Wildcard:
		return alphabetSize - 1
	default:
		return -1
	}
}

// Distance computes the Damerau-Levenshtein distance between a and b, with
// a wildcard extension: a substitution costs 0 when the two characters are
// equal or either one is the wildcard. Insertions and deletions always cost
// 1. This is the true Damerau-Levenshtein distance (adjacent transpositions
// included), not the optimal-string-alignment variant.
//
// Because stored words never contain the wildcard, calling Distance with
// two wildcard-free strings yields a genuine metric: symmetric, zero only
// for identical strings, and triangle-inequality-respecting. That is what
// lets pkg/bktree treat it as a BK-Tree key.
func Distance(a, b string) int {
	lenA, lenB := len(a), len(b)
	maxDist := lenA + lenB

	// da[c] is the last row in which character c of a was seen.
	da := make([]int, alphabetSize)

	// d is the DL matrix with the standard sentinel border of value
	// maxDist, sized (lenA+2) x (lenB+2).
	d := make([][]int, lenA+2)
	for i := range d {
		d[i] = make([]int, lenB+2)
	}

	d[0][0] = maxDist
	for i := 1; i <= lenA+1; i++ {
		d[i][0] = maxDist
		d[i][1] = i - 1
	}
	for j := 1; j <= lenB+1; j++ {
		d[0][j] = maxDist
		d[1][j] = j - 1
	}

	for i := 1; i <= lenA; i++ {
		db := 0

		for j := 1; j <= lenB; j++ {
			k := da[charIndex(b[j-1])]
			l := db

			var cost int
			if a[i-1] == b[j-1] || a[i-1] == Wildcard || b[j-1] == Wildcard {
				cost = 0
				db = j
			} else {
				cost = 1
			}

			d[i+1][j+1] = min4(
				d[i][j]+cost,              // substitution
				d[i+1][j]+1,               // insertion
				d[i][j+1]+1,               // deletion
				d[k][l]+(i-k-1)+1+(j-l-1), // transposition
			)
		}

		da[charIndex(a[i-1])] = i
	}

	return d[lenA+1][lenB+1]
}

func min4(a, b, c, d int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	if d < m {
		m = d
	}
	return m
}
