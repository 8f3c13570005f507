package builder

import "strconv"

// IDFn maps a zero-based vertex index to its identifier. It must be pure and
// injective over the indices a constructor uses.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PaddedIDFn returns idx zero-padded to width digits, so lexicographic and
// numeric order agree: PaddedIDFn(4)(7) == "0007".
func PaddedIDFn(width int) IDFn {
	return func(idx int) string {
		s := strconv.Itoa(idx)
		for len(s) < width {
			s = "0" + s
		}
		return s
	}
}

// ExcelColumnIDFn returns the spreadsheet column name of idx: 0→"A", 25→"Z",
// 26→"AA". Negative indices map to "".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return ""
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
