package export

import (
	"airlift-load-service/internal/domain"
	"fmt"
	"strings"
)

// Millimeters per meter: OpenSCAD models read better at mm scale.
const scadScale = 1000

// RenderOpenSCAD emits an OpenSCAD model of the packed bay: one solid
// cuboid per placement at its vehicle position, plus a wireframe of the
// bay boundary and a stats header. Coordinates are shifted so the bay's
// minimum corner sits at the OpenSCAD origin.
func RenderOpenSCAD(plan *domain.LoadPlan) ([]byte, error) {
	if plan == nil {
		return nil, fmt.Errorf("render openscad: plan is nil")
	}

	p := plan.Aircraft
	var b strings.Builder

	b.WriteString("// Airlift cargo loading manifest\n")
	b.WriteString(fmt.Sprintf("// Aircraft: %s\n", p.Name))
	b.WriteString("//\n")
	b.WriteString(fmt.Sprintf("// Total Weight: %.1f kg / %.0f kg\n", plan.TotalWeightKg, p.MaxWeightKg))
	b.WriteString(fmt.Sprintf("// Weight Utilization: %.2f%%\n", plan.WeightUtilization*100))
	b.WriteString(fmt.Sprintf("// Volume Utilization: %.2f%%\n", plan.VolumeUtilization*100))
	b.WriteString(fmt.Sprintf("// Balance Score: %.2f\n", plan.BalanceScore))
	b.WriteString(fmt.Sprintf("// Items Packed: %d\n", len(plan.Placements)))
	b.WriteString(fmt.Sprintf("// Items Unplaced: %d\n", len(plan.Unplaced)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("bay_length = %.0f;\n", p.BayLengthM*scadScale))
	b.WriteString(fmt.Sprintf("bay_width = %.0f;\n", p.BayWidthM*scadScale))
	b.WriteString(fmt.Sprintf("bay_height = %.0f;\n", p.BayHeightM*scadScale))
	b.WriteString("frame_r = 15;\n")
	b.WriteString("text_size = 50;\n")
	b.WriteString("$fn = 24;\n\n")

	b.WriteString(`// Bay boundary as an edge wireframe.
module bay_edge(from, to) {
    hull() {
        translate(from) sphere(r = frame_r);
        translate(to) sphere(r = frame_r);
    }
}

module bay_wireframe() {
    color([0.3, 0.3, 0.3]) {
        for (z = [0, bay_height]) {
            bay_edge([0, 0, z], [bay_length, 0, z]);
            bay_edge([0, bay_width, z], [bay_length, bay_width, z]);
            bay_edge([0, 0, z], [0, bay_width, z]);
            bay_edge([bay_length, 0, z], [bay_length, bay_width, z]);
        }
        for (x = [0, bay_length], y = [0, bay_width]) {
            bay_edge([x, y, 0], [x, y, bay_height]);
        }
    }
}

module cargo_box(x, y, z, l, w, h, c, label) {
    translate([x, y, z]) {
        color(c) cube([l, w, h]);
        color([1, 1, 1])
            translate([l / 2, w / 2, h + 1])
                linear_extrude(height = 2)
                    text(label, size = text_size, halign = "center", valign = "center");
    }
}

bay_wireframe();

`)

	for _, pl := range plan.Placements {
		item := pl.Item
		corner := pl.MinCorner(p)

		// Shift the vehicle frame so the bay spans [0, bay dimension].
		x := (corner.X + p.BayLengthM/2) * scadScale
		y := (corner.Y + p.BayWidthM/2) * scadScale
		z := (corner.Z + p.BayHeightM/2) * scadScale

		color := "[0.5, 0.5, 0.8, 0.8]"
		if preset, ok := domain.ItemPresets[item.Type]; ok {
			color = fmt.Sprintf("[%.2f, %.2f, %.2f, 0.8]", preset.Color[0], preset.Color[1], preset.Color[2])
		}

		b.WriteString(fmt.Sprintf("// Item %d: %s (priority %d, %s quadrant)\n",
			item.ID, item.Type, item.Priority, pl.Quadrant))
		b.WriteString(fmt.Sprintf("cargo_box(%.1f, %.1f, %.1f, %.1f, %.1f, %.1f, %s, \"ID%d\");\n\n",
			x, y, z,
			item.LengthM*scadScale, item.WidthM*scadScale, item.HeightM*scadScale,
			color, item.ID))
	}

	return []byte(b.String()), nil
}
