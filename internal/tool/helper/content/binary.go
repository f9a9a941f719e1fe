package content

// binarySampleSize is the number of leading bytes scanned for NUL, same as git.
const binarySampleSize = 8000

// IsBinaryContent reports whether content looks binary: a NUL byte in the
// sample, unless the data starts with a UTF-16 or UTF-32 byte order mark.
func IsBinaryContent(content []byte) bool {
	if len(content) >= 2 {
		if (content[0] == 0xFF && content[1] == 0xFE) ||
			(content[0] == 0xFE && content[1] == 0xFF) {
			return false
		}
	}
	if len(content) >= 4 {
		if content[0] == 0x00 && content[1] == 0x00 && content[2] == 0xFE && content[3] == 0xFF {
			return false
		}
	}

	sampleSize := min(len(content), binarySampleSize)
	for i := range sampleSize {
		if content[i] == 0 {
			return true
		}
	}
	return false
}
