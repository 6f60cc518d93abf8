package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// MillimetersToMeters is the default coordinate scale. OBJ coordinates are
// taken to be millimeters and stored as meters.
const MillimetersToMeters = 0.001

const maxLineLength = 1024 * 1024

var (
	// ErrMalformedRecord is returned in strict mode when a v or f record
	// cannot be parsed
	ErrMalformedRecord = errors.New("malformed record")
	// ErrIndexOutOfRange is returned in strict mode when a face references
	// a vertex that does not exist
	ErrIndexOutOfRange = errors.New("face index out of range")
)

// Options controls how OBJ text is turned into mesh data
type Options struct {
	// Scale multiplies every vertex coordinate. Zero means raw units.
	Scale float64
	// Strict turns every diagnostic into a parse error
	Strict bool
}

// DefaultOptions returns millimeter input with lenient parsing
func DefaultOptions() Options {
	return Options{Scale: MillimetersToMeters}
}

func (o Options) scale() float64 {
	if o.Scale == 0 {
		return 1
	}
	return o.Scale
}

// Data is the result of parsing an OBJ file
type Data struct {
	Vertices    []geometry.Vector3
	Faces       []geometry.Face
	Diagnostics []Diagnostic
}

// ParseFile opens and parses an OBJ file
func ParseFile(filename string, opts Options) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := Parse(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return data, nil
}

// Parse reads OBJ text. Only v and f records are interpreted; every other
// record type is skipped.
func Parse(reader io.Reader, opts Options) (*Data, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	data := &Data{
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([]geometry.Face, 0),
	}
	faceLines := make([]int, 0)
	scale := opts.scale()

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, err := parseVertex(fields[1:], scale)
			if err != nil {
				if err := data.report(opts, lineNo, MalformedVertex, err); err != nil {
					return nil, err
				}
				continue
			}
			data.Vertices = append(data.Vertices, vertex)

		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				if err := data.report(opts, lineNo, MalformedFace, err); err != nil {
					return nil, err
				}
				continue
			}
			data.Faces = append(data.Faces, face)
			faceLines = append(faceLines, lineNo)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	// Faces may legally reference vertices declared after them, so bounds
	// are checked once every vertex is known.
	kept := data.Faces[:0]
	for i, face := range data.Faces {
		if face.InRange(len(data.Vertices)) {
			kept = append(kept, face)
			continue
		}
		err := fmt.Errorf("%w: face %v with %d vertices", ErrIndexOutOfRange, oneBased(face), len(data.Vertices))
		if err := data.report(opts, faceLines[i], IndexOutOfRange, err); err != nil {
			return nil, err
		}
	}
	data.Faces = kept

	return data, nil
}

// report records a diagnostic. In strict mode it returns the error that
// aborts the parse instead.
func (d *Data) report(opts Options, line int, kind DiagnosticKind, cause error) error {
	diag := &Diagnostic{Line: line, Kind: kind, Err: cause}
	if opts.Strict {
		return diag
	}
	d.Diagnostics = append(d.Diagnostics, *diag)
	return nil
}

func parseVertex(args []string, scale float64) (geometry.Vector3, error) {
	if len(args) < 3 {
		return geometry.Vector3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", ErrMalformedRecord, len(args))
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("%w: coordinate %q", ErrMalformedRecord, args[i])
		}
		value *= scale
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return geometry.Vector3{}, fmt.Errorf("%w: coordinate %q is not finite", ErrMalformedRecord, args[i])
		}
		coords[i] = value
	}

	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

func parseFace(args []string) (geometry.Face, error) {
	face := make(geometry.Face, 0, len(args))
	for _, arg := range args {
		// vertex/texture/normal: only the vertex index is used
		index, _, _ := strings.Cut(arg, "/")
		value, err := strconv.Atoi(index)
		if err != nil {
			return nil, fmt.Errorf("%w: vertex index %q", ErrMalformedRecord, arg)
		}
		face = append(face, value-1)
	}
	return face, nil
}

func oneBased(face geometry.Face) []int {
	indices := make([]int, len(face))
	for i, idx := range face {
		indices[i] = idx + 1
	}
	return indices
}
