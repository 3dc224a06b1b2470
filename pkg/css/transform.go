package css

import (
	"strings"
)

// Transform is one function of a transform property value.
type Transform struct {
	Type   string
	Values []float64
}

// ParseTransform parses a transform value such as "scale(0.5, 0.5)" or
// "translate(10px, 4px) scale(2)". Unparseable functions are dropped and
// "none" yields no transforms.
func ParseTransform(val string) []Transform {
	val = strings.TrimSpace(val)
	if val == "" || val == "none" {
		return nil
	}
	var out []Transform
	for val != "" {
		open := strings.IndexByte(val, '(')
		end := strings.IndexByte(val, ')')
		if open < 0 || end < open {
			break
		}
		name := strings.ToLower(strings.TrimSpace(val[:open]))
		args := strings.Split(val[open+1:end], ",")
		val = strings.TrimSpace(val[end+1:])

		t := Transform{Type: name}
		ok := true
		for _, a := range args {
			n, valid := ParseLength(a)
			if !valid {
				ok = false
				break
			}
			t.Values = append(t.Values, n)
		}
		if !ok || len(t.Values) == 0 {
			continue
		}
		// scale(s) is shorthand for scale(s, s)
		if t.Type == "scale" && len(t.Values) == 1 {
			t.Values = append(t.Values, t.Values[0])
		}
		out = append(out, t)
	}
	return out
}

// GetScale returns the combined scale of the style's transform property.
// It is 1, 1 when no scale function is present.
func (s *Style) GetScale() (x, y float64) {
	x, y = 1, 1
	val, ok := s.Get("transform")
	if !ok {
		return x, y
	}
	for _, t := range ParseTransform(val) {
		if t.Type == "scale" {
			x *= t.Values[0]
			y *= t.Values[1]
		}
	}
	return x, y
}
