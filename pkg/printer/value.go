package printer

import (
	"fmt"
	"strings"

	"github.com/m-ou-se/configtaal/internal/value"
)

// PrintValue renders an evaluated value.Value for CLI/test output: scalars
// print plainly, strings quoted, lists as `[...]`, objects as `{k = v,
// ...}` in their preserved insertion order.
func PrintValue(v value.Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v value.Value) {
	switch {
	case value.IsType[int64](v):
		fmt.Fprintf(sb, "%d", value.MustAs[int64](v))
	case value.IsType[float64](v):
		fmt.Fprintf(sb, "%g", value.MustAs[float64](v))
	case value.IsType[string](v):
		fmt.Fprintf(sb, "%q", value.MustAs[string](v))
	case value.IsType[bool](v):
		fmt.Fprintf(sb, "%v", value.MustAs[bool](v))
	case value.IsType[value.List](v):
		list := value.MustAs[value.List](v)
		sb.WriteByte('[')
		for i, elem := range list {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeValue(sb, elem)
		}
		sb.WriteByte(']')
	case value.IsType[*value.Object](v):
		obj := value.MustAs[*value.Object](v)
		sb.WriteByte('{')
		for i, k := range obj.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			elem, _ := obj.Get(k)
			fmt.Fprintf(sb, "%s = ", k)
			writeValue(sb, elem)
		}
		sb.WriteByte('}')
	default:
		fmt.Fprintf(sb, "<unknown type %s>", v.Type())
	}
}
