package css

import (
	"strconv"
	"strings"
)

// Declaration is a single "property: value" pair of an inline style.
type Declaration struct {
	Property string
	Value    string
}

// Style is an inline style attribute. Declarations keep the order in which
// they were first set so serialization is stable.
type Style struct {
	decls []Declaration
}

func NewStyle() *Style {
	return &Style{}
}

// ParseInlineStyle parses the value of a style attribute. Malformed
// declarations are skipped; a later duplicate overrides an earlier one.
func ParseInlineStyle(styleAttr string) *Style {
	style := NewStyle()
	for _, decl := range strings.Split(styleAttr, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		idx := strings.IndexByte(decl, ':')
		if idx < 0 {
			continue
		}
		property := strings.ToLower(strings.TrimSpace(decl[:idx]))
		value := strings.TrimSpace(decl[idx+1:])
		if property == "" {
			continue
		}
		style.Set(property, value)
	}
	return style
}

func (s *Style) index(property string) int {
	for i, d := range s.decls {
		if d.Property == property {
			return i
		}
	}
	return -1
}

func (s *Style) Get(property string) (string, bool) {
	if i := s.index(property); i >= 0 {
		return s.decls[i].Value, true
	}
	return "", false
}

// Set assigns a property, keeping its position if it already exists.
// An empty value removes the property.
func (s *Style) Set(property, value string) {
	if value == "" {
		s.Remove(property)
		return
	}
	if i := s.index(property); i >= 0 {
		s.decls[i].Value = value
		return
	}
	s.decls = append(s.decls, Declaration{Property: property, Value: value})
}

func (s *Style) Remove(property string) bool {
	i := s.index(property)
	if i < 0 {
		return false
	}
	s.decls = append(s.decls[:i], s.decls[i+1:]...)
	return true
}

func (s *Style) Len() int {
	return len(s.decls)
}

// Properties returns the property names in declaration order.
func (s *Style) Properties() []string {
	props := make([]string, len(s.decls))
	for i, d := range s.decls {
		props[i] = d.Property
	}
	return props
}

// String serializes the style back into attribute form.
func (s *Style) String() string {
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}

func (s *Style) GetLength(property string) (float64, bool) {
	val, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return ParseLength(val)
}

// ParseLength parses a length value (e.g., "100px" or "100")
func ParseLength(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return num, true
}

// FormatLength renders v as a pixel length with no trailing zeros.
func FormatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// BoxEdge represents the four sides of a box (top, right, bottom, left)
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// GetMargin returns the margin values for all four sides. Unset or
// non-numeric margins ("auto") count as zero.
func (s *Style) GetMargin() BoxEdge {
	return BoxEdge{
		Top:    s.getLengthOrZero("margin-top"),
		Right:  s.getLengthOrZero("margin-right"),
		Bottom: s.getLengthOrZero("margin-bottom"),
		Left:   s.getLengthOrZero("margin-left"),
	}
}

func (s *Style) getLengthOrZero(property string) float64 {
	val, ok := s.GetLength(property)
	if !ok {
		return 0
	}
	return val
}
