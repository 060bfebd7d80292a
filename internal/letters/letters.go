// Package letters implements the A-Z letter multiset used to prune the
// anagram search.
package letters

// Counts is a letter multiset: Counts[0] is the number of 'A's, Counts[25]
// the number of 'Z's.
type Counts [26]int

// Mask has bit i set when letter 'A'+i occurs at least once.
type Mask uint32

// Count builds the multiset of s. Lowercase ASCII letters count as their
// uppercase form. ok is false when s contains anything other than an
// ASCII letter.
func Count(s string) (c Counts, ok bool) {
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'A' && b <= 'Z':
			c[b-'A']++
		case b >= 'a' && b <= 'z':
			c[b-'a']++
		default:
			return Counts{}, false
		}
	}
	return c, true
}

// Mask returns the set of distinct letters present in c.
func (c Counts) Mask() Mask {
	var m Mask
	for i, n := range c {
		if n > 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Len is the total number of letters.
func (c Counts) Len() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// SubsetOf reports whether every count in c is <= the matching count in o.
func (c Counts) SubsetOf(o Counts) bool {
	for i, n := range c {
		if n > o[i] {
			return false
		}
	}
	return true
}

// Equal reports whether c and o hold identical counts for every letter.
func (c Counts) Equal(o Counts) bool {
	return c == o
}

// Sub returns c minus o. The caller guarantees o.SubsetOf(c).
func (c Counts) Sub(o Counts) Counts {
	for i, n := range o {
		c[i] -= n
	}
	return c
}

// Add returns c plus o.
func (c Counts) Add(o Counts) Counts {
	for i, n := range o {
		c[i] += n
	}
	return c
}

// SubsetOf reports whether every letter in m is also in o.
func (m Mask) SubsetOf(o Mask) bool {
	return m&^o == 0
}
