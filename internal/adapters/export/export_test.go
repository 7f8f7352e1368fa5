package export

import (
	"airlift-load-service/internal/domain"
	"bytes"
	"strings"
	"testing"
)

func samplePlan(t *testing.T) *domain.LoadPlan {
	t.Helper()

	p := domain.UH60BlackHawk()
	water, err := domain.ItemFromPreset(domain.ItemWaterCase, 8, 1)
	if err != nil {
		t.Fatalf("preset item: %v", err)
	}
	kit, err := domain.ItemFromPreset(domain.ItemFirstAidKit, 10, 2)
	if err != nil {
		t.Fatalf("preset item: %v", err)
	}

	return &domain.LoadPlan{
		Aircraft: p,
		Placements: []domain.Placement{
			{Item: kit, Quadrant: domain.FrontLeft, Anchor: domain.Vec3{}},
			{Item: water, Quadrant: domain.FrontRight, Anchor: domain.Vec3{}},
		},
		TotalWeightKg:     water.WeightKg + kit.WeightKg,
		WeightUtilization: (water.WeightKg + kit.WeightKg) / p.MaxWeightKg,
		TotalVolumeM3:     water.VolumeM3() + kit.VolumeM3(),
		BalanceScore:      1 - water.WeightKg/(water.WeightKg+kit.WeightKg),
	}
}

func TestRenderLoadingPDF(t *testing.T) {
	out, err := RenderLoadingPDF(samplePlan(t))
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", out[:min(len(out), 8)])
	}
}

func TestRenderLoadingPDFNilPlan(t *testing.T) {
	if _, err := RenderLoadingPDF(nil); err == nil {
		t.Fatal("expected an error for a nil plan")
	}
}

func TestRenderOpenSCAD(t *testing.T) {
	out, err := RenderOpenSCAD(samplePlan(t))
	if err != nil {
		t.Fatalf("render openscad: %v", err)
	}
	scad := string(out)

	for _, want := range []string{
		"bay_wireframe();",
		"cargo_box(",
		"// Item 1: water-case (priority 8, front-right quadrant)",
		"// Item 2: first-aid-kit (priority 10, front-left quadrant)",
		"bay_length = 3800;",
	} {
		if !strings.Contains(scad, want) {
			t.Fatalf("output missing %q", want)
		}
	}

	// One cargo_box call per placement.
	if got := strings.Count(scad, "cargo_box("); got != 3 { // module definition + 2 calls
		t.Fatalf("cargo_box occurrences = %d, want 3", got)
	}
}

func TestRenderOpenSCADNilPlan(t *testing.T) {
	if _, err := RenderOpenSCAD(nil); err == nil {
		t.Fatal("expected an error for a nil plan")
	}
}
