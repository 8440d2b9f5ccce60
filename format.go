package smolvec

import "fmt"

// Format implements fmt.Formatter by formatting the elements as a slice.
func (v *SmolVec[T]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}

func (v *SmolVec[T]) String() string {
	return fmt.Sprint(v.Slice())
}
