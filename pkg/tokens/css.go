package tokens

import (
	"fmt"
	"strconv"
	"strings"
)

// CSSPrefix starts every generated custom property name.
const CSSPrefix = "--"

// CSSVariable converts a dotted path to a custom property name:
// "colors.brand.primary.orange" becomes "--colors-brand-primary-orange".
func CSSVariable(path string) string {
	return CSSPrefix + strings.ReplaceAll(path, Delimiter, "-")
}

// CSS renders every leaf as a custom property inside a :root block, one per
// line in path order.
func CSS() (string, error) {
	paths, err := Paths()
	if err != nil {
		return "", err
	}
	flat, err := Flatten()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, p := range paths {
		fmt.Fprintf(&b, "  %s: %s;\n", CSSVariable(p), cssValue(flat[p]))
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func cssValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
