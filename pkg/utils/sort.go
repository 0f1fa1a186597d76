package utils

import (
	"strings"
	"unicode"
)

// NaturalLess compara nomes ignorando maiúsculas e tratando dígitos como números,
// de modo que "conta2" vem antes de "conta10"
func NaturalLess(a, b string) bool {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		if unicode.IsDigit(ra[i]) && unicode.IsDigit(rb[j]) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}

			na := strings.TrimLeft(string(ra[si:i]), "0")
			nb := strings.TrimLeft(string(rb[sj:j]), "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			continue
		}

		if ra[i] != rb[j] {
			return ra[i] < rb[j]
		}
		i++
		j++
	}

	return len(ra)-i < len(rb)-j
}
