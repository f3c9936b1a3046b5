package ignore

// globMatch reports whether the fnmatch-style pattern matches s in full.
//
// Unlike path.Match, a * here matches any run of characters including the
// path separator, following classic fnmatch semantics rather than per-segment
// glob semantics. ? matches exactly one character and [...] matches a
// character class, with [!...] negation and a-z ranges. There is no escape
// syntax; a backslash is an ordinary character.
func globMatch(pattern, s string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// Collapse consecutive stars; a trailing star matches the rest.
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if globMatch(pattern, s[i:]) {
					return true
				}
			}
			return false

		case '?':
			if len(s) == 0 {
				return false
			}
			pattern = pattern[1:]
			s = s[1:]

		case '[':
			if len(s) == 0 {
				return false
			}
			matched, rest, ok := matchClass(pattern, s[0])
			if !ok {
				// Unterminated class: treat the bracket as a literal.
				if s[0] != '[' {
					return false
				}
				pattern = pattern[1:]
				s = s[1:]
				continue
			}
			if !matched {
				return false
			}
			pattern = rest
			s = s[1:]

		default:
			if len(s) == 0 || pattern[0] != s[0] {
				return false
			}
			pattern = pattern[1:]
			s = s[1:]
		}
	}
	return len(s) == 0
}

// matchClass matches c against the [...] class at the start of pattern and
// returns the remainder of the pattern after the closing bracket. ok is
// false when the class is never closed, in which case the caller falls back
// to treating the opening bracket literally.
func matchClass(pattern string, c byte) (matched bool, rest string, ok bool) {
	i := 1
	negate := false
	if i < len(pattern) && pattern[i] == '!' {
		negate = true
		i++
	}

	// A ] immediately after the opening (or after !) is a literal member,
	// so the closing-bracket scan starts one character in.
	start := i
	for i < len(pattern) && (pattern[i] != ']' || i == start) {
		i++
	}
	if i >= len(pattern) {
		return false, "", false
	}

	for j := start; j < i; {
		if j+2 < i && pattern[j+1] == '-' {
			if pattern[j] <= c && c <= pattern[j+2] {
				matched = true
			}
			j += 3
		} else {
			if pattern[j] == c {
				matched = true
			}
			j++
		}
	}
	if negate {
		matched = !matched
	}
	return matched, pattern[i+1:], true
}
