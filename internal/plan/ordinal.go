package plan

import "fmt"

var ordinals = [...]string{"1er", "2do", "3er", "4to", "5to", "6to", "7mo", "8vo", "9no"}

// OrdinalLabel maps a zero-based installment index to its Spanish ordinal
// label: "1er", "2do", ... "9no", then "10°", "11°" and so on.
func OrdinalLabel(index int) string {
	n := index + 1
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return fmt.Sprintf("%d°", n)
}
