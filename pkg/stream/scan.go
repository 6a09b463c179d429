package stream

// ScanRecords is a bufio.SplitFunc that tokenizes an input stream into
// newline-framed records.
//
// Framing behaviour:
//
//   - Records are delimited by '\n', '\r\n', or '\r'.
//   - The returned token does NOT include the trailing record separator.
//   - Empty records are preserved: "a\n\nb" yields "a", "", "b".
//   - A lone '\r' at the end of the buffer is held back until more data (or
//     EOF) arrives, so a CRLF split across two reads is not misread as two
//     separators.
//
// It differs from bufio.ScanLines in its handling of a bare '\r' separator
// and in never merging consecutive separators.
//
// Example:
//
//	scanner := bufio.NewScanner(r)
//	scanner.Split(stream.ScanRecords)
//	for scanner.Scan() {
//	    token := scanner.Text() // one complete record, no trailing newline
//	}
func ScanRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// No data and nothing more to read.
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			return i + 1, data[:i], nil

		case '\r':
			if i+1 == len(data) && !atEOF {
				// Possibly the first half of a CRLF pair: request more data.
				return 0, nil, nil
			}
			adv := i + 1
			if i+1 < len(data) && data[i+1] == '\n' {
				adv = i + 2
			}
			return adv, data[:i], nil
		}
	}

	// No record delimiter found in the current buffer.
	if atEOF {
		// Last record at EOF: return the remainder (no delimiter).
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
