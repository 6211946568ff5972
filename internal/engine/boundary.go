package engine

// isIdentRune reports whether r may appear in a name: '_', an ASCII letter or
// an ASCII digit.
func isIdentRune(r rune) bool {
	switch {
	case r == '_':
		return true
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	case '0' <= r && r <= '9':
		return true
	}
	return false
}

// indexRunes is strings.Index over a rune slice, starting at from.
func indexRunes(line, tok []rune, from int) int {
	if from < 0 {
		from = 0
	}
	if len(tok) == 0 || from+len(tok) > len(line) {
		return -1
	}
	for i := from; i+len(tok) <= len(line); i++ {
		if line[i] != tok[0] {
			continue
		}
		ok := true
		for j := 1; j < len(tok); j++ {
			if line[i+j] != tok[j] {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

// FindBoundaryMatch returns the first occurrence of token in line at or after
// from that is not glued to identifier characters on either side.
//
// A rejected raw match resumes the search after the whole token, so
// overlapping candidates inside a rejected match are never considered.
func FindBoundaryMatch(line []rune, token string, from int) (Span, bool) {
	tok := []rune(token)
	pos := indexRunes(line, tok, from)
	for pos >= 0 {
		end := pos + len(tok) - 1
		leftGlued := pos > 0 && isIdentRune(line[pos-1])
		rightGlued := end+1 < len(line) && isIdentRune(line[end+1])
		if !leftGlued && !rightGlued {
			return Span{Start: pos, End: end}, true
		}
		pos = indexRunes(line, tok, pos+len(tok))
	}
	return Span{}, false
}
