package content

import (
	"fmt"
	"unicode/utf8"
)

// TruncateRunes returns the first max characters of s and whether anything
// was cut. Invalid UTF-8 bytes count as one character each.
func TruncateRunes(s string, max int) (string, bool) {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s, false
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i], true
		}
		count++
	}
	return s, false
}

// RuneCount is the character count used in tool reports.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// OutputTruncatedNotice marks process output cut at limit bytes.
func OutputTruncatedNotice(limit int) string {
	return fmt.Sprintf("[output truncated at %d bytes]", limit)
}

// BinaryOutputNotice stands in for a stream that contained binary data.
func BinaryOutputNotice(size int64) string {
	return fmt.Sprintf("[binary output omitted (%d bytes)]", size)
}
