// Package jsonc converts JSON-with-comments documents into plain JSON.
//
// Palette files are hand-authored and annotated, so both block comments
// (/* ... */) and line comments (// ...) are accepted. Strip removes them in
// a single pass that tracks string literals, which keeps values such as
// "https://example.com" intact.
//
// Design: Strip never fails. Anything it cannot make sense of is passed
// through unchanged so the JSON decoder reports the problem with a useful
// offset. Newlines inside removed block comments are preserved for the same
// reason.
package jsonc

// Strip returns src with all comments removed.
func Strip(src []byte) []byte {
	out := make([]byte, 0, len(src))
	inString := false

	for i := 0; i < len(src); i++ {
		c := src[i]

		if inString {
			out = append(out, c)
			switch c {
			case '\\':
				if i+1 < len(src) {
					i++
					out = append(out, src[i])
				}
			case '"':
				inString = false
			}
			continue
		}

		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}

		if c == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '/':
				i = skipLine(src, i+2)
				continue
			case '*':
				end, nl, ok := skipBlock(src, i+2)
				if !ok {
					// Left in place so decoding fails on it.
					return append(out, src[i:]...)
				}
				i = end
				for range nl {
					out = append(out, '\n')
				}
				continue
			}
		}

		out = append(out, c)
	}
	return out
}

// skipLine returns the index of the last byte before the next newline, so the
// newline itself is kept by the caller's loop.
func skipLine(src []byte, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i - 1
}

// skipBlock returns the index of the closing '/' of a block comment and the
// number of newlines it contained. ok is false when the comment is never
// closed.
func skipBlock(src []byte, i int) (end, nl int, ok bool) {
	for ; i < len(src); i++ {
		if src[i] == '\n' {
			nl++
		}
		if src[i] == '*' && i+1 < len(src) && src[i+1] == '/' {
			return i + 1, nl, true
		}
	}
	return len(src), nl, false
}
