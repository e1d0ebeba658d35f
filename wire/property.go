package wire

// Property is a name/value pair for set_property. The constructors below
// produce the value shapes the viewer accepts for each property name.
type Property struct {
	Name  string
	Value any
}

// Visible toggles a node's visibility.
func Visible(visible bool) Property {
	return Property{Name: "visible", Value: visible}
}

// Position sets a node's position without touching its rotation.
func Position(x, y, z float64) Property {
	return Property{Name: "position", Value: [3]float64{x, y, z}}
}

// Quaternion sets a node's rotation as [x, y, z, w].
func Quaternion(q [4]float64) Property {
	return Property{Name: "quaternion", Value: q}
}

// Scale sets a node's per-axis scale.
func Scale(x, y, z float64) Property {
	return Property{Name: "scale", Value: [3]float64{x, y, z}}
}

// Color sets a node's color as rgba in [0, 1].
func Color(r, g, b, a float64) Property {
	return Property{Name: "color", Value: [4]float64{r, g, b, a}}
}

// Opacity sets a node's opacity in [0, 1].
func Opacity(opacity float64) Property {
	return Property{Name: "opacity", Value: opacity}
}

// ModulatedOpacity multiplies into the opacity set on materials.
func ModulatedOpacity(opacity float64) Property {
	return Property{Name: "modulated_opacity", Value: opacity}
}

// TopColor sets the upper background gradient color, rgb in [0, 1].
// Target the /Background path.
func TopColor(r, g, b float64) Property {
	return Property{Name: "top_color", Value: [3]float64{r, g, b}}
}

// BottomColor sets the lower background gradient color, rgb in [0, 1].
// Target the /Background path.
func BottomColor(r, g, b float64) Property {
	return Property{Name: "bottom_color", Value: [3]float64{r, g, b}}
}
