package bembo

// SoftLine renders as a single space if it fits on the current line,
// otherwise as a line break: Group(Line()) with the flat alternative
// being a space rather than nothing.
func SoftLine() Doc {
	return choice(Char(' '), Line())
}

// SoftBreak renders as nothing if it fits on the current line, otherwise
// as a line break: like SoftLine but the flat alternative is empty.
func SoftBreak() Doc {
	return choice(Nil(), Line())
}

// Angles surrounds d with '<' and '>'.
func Angles(d Doc) Doc {
	return surround('<', d, '>')
}

// Braces surrounds d with '{' and '}'.
func Braces(d Doc) Doc {
	return surround('{', d, '}')
}

// Brackets surrounds d with '[' and ']'.
func Brackets(d Doc) Doc {
	return surround('[', d, ']')
}

// Quotes surrounds d with single quotes.
func Quotes(d Doc) Doc {
	return surround('\'', d, '\'')
}

// DQuotes surrounds d with double quotes.
func DQuotes(d Doc) Doc {
	return surround('"', d, '"')
}

// Parens surrounds d with parentheses.
func Parens(d Doc) Doc {
	return surround('(', d, ')')
}

func surround(open rune, d Doc, shut rune) Doc {
	return concatSlice([]Doc{Char(open), d, Char(shut)})
}

// Join concatenates docs with no separator: a left fold of Append over
// Nil.
func Join(docs ...Doc) Doc {
	return concatSlice(docs)
}

// Sep interleaves sep between each pair of consecutive docs, wrapping
// each (item + sep) pair except the last item in its own Group so that
// each separator independently decides whether it needs to break,
// matching spec.md §6 and spec.md §8 item 7. A separator with no Line in
// it, such as Text(", "), renders the same at every width.
func Sep(sep Doc, docs ...Doc) Doc {
	if len(docs) == 0 {
		return Nil()
	}
	out := make([]Doc, 0, len(docs))
	for i, d := range docs {
		if i == len(docs)-1 {
			out = append(out, d)
			break
		}
		out = append(out, Group(d.Append(sep)))
	}
	return concatSlice(out)
}
