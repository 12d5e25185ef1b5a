package facet

// A Labeller turns a faceting variable and one of its values into the
// text shown in a strip label.
type Labeller func(variable, value string) string

// LabelValue shows just the value. This is the default.
func LabelValue(variable, value string) string { return value }

// LabelBoth shows "variable: value".
func LabelBoth(variable, value string) string { return variable + ": " + value }
