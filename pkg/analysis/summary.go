package analysis

import (
	"fmt"
	"io"
	"strings"
)

// Unit labels for meters-based output
const (
	UnitLength = "m"
	UnitArea   = "m²"
	UnitVolume = "m³"
)

// Summary formats the headline quantities as a single line, two decimals
// each
func Summary(result *MeasurementResult) string {
	d := result.Dimensions
	return fmt.Sprintf("Dimensions: %.2fx%.2fx%.2f %s | Volume: %.2f %s | Projected area: %.2f %s",
		d.X, d.Y, d.Z, UnitLength,
		result.Volume, UnitVolume,
		result.ProjectedArea, UnitArea)
}

// WriteReport writes the full multi-line report
func WriteReport(w io.Writer, name string, result *MeasurementResult) error {
	var b strings.Builder

	fmt.Fprintln(&b, "OBJ Model Information")
	fmt.Fprintln(&b, "=====================")
	if name != "" {
		fmt.Fprintf(&b, "File: %s\n", name)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Mesh:")
	fmt.Fprintf(&b, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(&b, "  Faces: %d", result.FaceCount)
	if result.DegenerateFaces > 0 {
		fmt.Fprintf(&b, " (%d degenerate)", result.DegenerateFaces)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(&b, "  Surface Area: %s\n\n", FormatMeasurement(result.SurfaceArea, UnitArea))

	fmt.Fprintln(&b, "Bounding Box:")
	if result.BoundingBox.IsEmpty() {
		fmt.Fprintln(&b, "  (empty)")
	} else {
		fmt.Fprintf(&b, "  Min: %s\n", FormatVector(result.BoundingBox.Min))
		fmt.Fprintf(&b, "  Max: %s\n", FormatVector(result.BoundingBox.Max))
		fmt.Fprintf(&b, "  Center: %s\n", FormatVector(result.BoundingBox.Center()))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Dimensions:")
	fmt.Fprintf(&b, "  Width (X): %s\n", FormatMeasurement(result.Dimensions.X, UnitLength))
	fmt.Fprintf(&b, "  Height (Y): %s\n", FormatMeasurement(result.Dimensions.Y, UnitLength))
	fmt.Fprintf(&b, "  Depth (Z): %s\n\n", FormatMeasurement(result.Dimensions.Z, UnitLength))

	fmt.Fprintln(&b, "Derived:")
	fmt.Fprintf(&b, "  Volume: %s\n", FormatMeasurement(result.Volume, UnitVolume))
	fmt.Fprintf(&b, "  Projected Area (%s): %s\n",
		result.Options, FormatMeasurement(result.ProjectedArea, UnitArea))

	_, err := io.WriteString(w, b.String())
	return err
}
