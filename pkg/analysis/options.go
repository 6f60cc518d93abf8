package analysis

import "fmt"

// AreaMethod selects the projected-area algorithm
type AreaMethod int

const (
	// AreaNormal fan-triangulates each face and weights its true area by
	// the cosine between its normal and +Z
	AreaNormal AreaMethod = iota
	// AreaFlat takes the 2D shoelace area of each face's first triangle,
	// ignoring Z
	AreaFlat
)

func (a AreaMethod) String() string {
	switch a {
	case AreaNormal:
		return "normal"
	case AreaFlat:
		return "flat"
	default:
		return fmt.Sprintf("AreaMethod(%d)", int(a))
	}
}

// Set parses a method name; it implements pflag.Value
func (a *AreaMethod) Set(s string) error {
	switch s {
	case "normal":
		*a = AreaNormal
	case "flat":
		*a = AreaFlat
	default:
		return fmt.Errorf("unknown area method %q (expected normal or flat)", s)
	}
	return nil
}

// Type implements pflag.Value
func (a *AreaMethod) Type() string {
	return "method"
}

// CosinePolicy decides how face-normal projection weights faces that
// point away from +Z
type CosinePolicy int

const (
	// CosineFrontFacing counts only faces whose normal has a positive Z
	// component. For a closed mesh this is the silhouette area.
	CosineFrontFacing CosinePolicy = iota
	// CosineUnsigned counts every face with |cos|, regardless of winding.
	// A closed mesh is counted twice (top and bottom).
	CosineUnsigned
)

func (c CosinePolicy) String() string {
	switch c {
	case CosineFrontFacing:
		return "front"
	case CosineUnsigned:
		return "unsigned"
	default:
		return fmt.Sprintf("CosinePolicy(%d)", int(c))
	}
}

// Set parses a policy name; it implements pflag.Value
func (c *CosinePolicy) Set(s string) error {
	switch s {
	case "front":
		*c = CosineFrontFacing
	case "unsigned":
		*c = CosineUnsigned
	default:
		return fmt.Errorf("unknown cosine policy %q (expected front or unsigned)", s)
	}
	return nil
}

// Type implements pflag.Value
func (c *CosinePolicy) Type() string {
	return "policy"
}

// Options configures projected-area computation
type Options struct {
	Area   AreaMethod   `json:"area"`
	Cosine CosinePolicy `json:"cosine"`
}

// DefaultOptions returns face-normal projection counting front faces only
func DefaultOptions() Options {
	return Options{Area: AreaNormal, Cosine: CosineFrontFacing}
}

func (o Options) String() string {
	if o.Area == AreaFlat {
		return o.Area.String()
	}
	return o.Area.String() + ", " + o.Cosine.String()
}

// MarshalText renders the method name in JSON output
func (a AreaMethod) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a method name
func (a *AreaMethod) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}

// MarshalText renders the policy name in JSON output
func (c CosinePolicy) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a policy name
func (c *CosinePolicy) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}
