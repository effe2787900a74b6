package ui

// Parameter is one labelled value shown on the overlay.
type Parameter struct {
	Key   string
	Value string
}

// ParameterGroup clusters related parameters under a heading.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures what the overlay shows for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lines flattens the snapshot into display lines.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		if g.Name != "" {
			out = append(out, g.Name)
		}
		for _, p := range g.Params {
			out = append(out, " "+p.Key+":"+p.Value)
		}
	}
	return out
}

// ParameterProvider exposes the values the overlay displays.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
