package utils

// NormalizeLine drops every newline and carriage-return byte and
// downcases 'A'-'Z' to 'a'-'z'. All other bytes pass through unchanged so
// the filter stage can reject them. The mapping is byte-wise and
// locale-independent, matching the original tool's line transform.
func NormalizeLine(line string) string {
	buf := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\n' || c == '\r':
			continue
		case c >= 'A' && c <= 'Z':
			buf = append(buf, c-'A'+'a')
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}
