package export

import (
	"airlift-load-service/internal/domain"
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry for the quadrant elevation drawing, in points.
const (
	drawX = 50
	drawY = 180
	drawW = 500
	drawH = 330
)

// RenderLoadingPDF renders the crew loading sheet: one page per quadrant,
// each showing a side elevation of that quadrant's shelf with every
// placement drawn to scale, plus the plan's headline metrics and a legend.
func RenderLoadingPDF(plan *domain.LoadPlan) ([]byte, error) {
	if plan == nil {
		return nil, fmt.Errorf("render loading pdf: plan is nil")
	}

	p := plan.Aircraft
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pageW, _ := pdf.GetPageSize()

	for page, q := range domain.Quadrants {
		pdf.AddPage()

		var inQuadrant []domain.Placement
		for _, pl := range plan.Placements {
			if pl.Quadrant == q {
				inQuadrant = append(inQuadrant, pl)
			}
		}

		pdf.SetFont("Helvetica", "B", 20)
		pdf.Text(50, 50, fmt.Sprintf("Airlift Loading Plan - %s quadrant", q))

		pdf.SetFont("Helvetica", "", 12)
		pdf.Text(50, 75, p.Name)
		pdf.Text(50, 92, fmt.Sprintf("Quadrant region: %.2fm x %.2fm x %.2fm", p.BayLengthM/2, p.BayWidthM/2, p.BayHeightM))

		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(400, 75, fmt.Sprintf("Total Weight: %.1f / %.0f kg", plan.TotalWeightKg, p.MaxWeightKg))
		pdf.Text(400, 92, fmt.Sprintf("Items in Quadrant: %d (%.1f kg)", len(inQuadrant), plan.QuadrantWeights[page]))
		pdf.Text(400, 109, fmt.Sprintf("Balance Score: %.2f", plan.BalanceScore))
		cog := plan.CenterOfGravity
		pdf.Text(400, 126, fmt.Sprintf("CoG: X:%.2f Y:%.2f Z:%.2f m", cog.X, cog.Y, cog.Z))

		drawQuadrantElevation(pdf, p, inQuadrant)
		drawLegend(pdf, inQuadrant)

		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(pageW-100, 760, fmt.Sprintf("Page %d of 4", page+1))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render loading pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Side elevation: horizontal axis is the quadrant's length (shelf) axis,
// vertical axis is bay height. Anchors are local, so drawing needs no
// frame conversion.
func drawQuadrantElevation(pdf *gofpdf.Fpdf, p domain.AircraftProfile, placements []domain.Placement) {
	regionL := p.BayLengthM / 2
	scaleX := drawW / regionL
	scaleY := drawH / p.BayHeightM

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Rect(drawX, drawY, drawW, drawH, "D")

	// Half-meter grid.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.5)
	for m := 0.5; m < regionL; m += 0.5 {
		x := drawX + m*scaleX
		pdf.Line(x, drawY, x, drawY+drawH)
	}
	for m := 0.5; m < p.BayHeightM; m += 0.5 {
		y := drawY + drawH - m*scaleY
		pdf.Line(drawX, y, drawX+drawW, y)
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(drawX+drawW/2-30, drawY+drawH+20, "Length (m)")
	pdf.TransformBegin()
	pdf.TransformRotate(90, drawX-20, drawY+drawH/2)
	pdf.Text(drawX-50, drawY+drawH/2, "Height (m)")
	pdf.TransformEnd()

	for _, pl := range placements {
		item := pl.Item
		boxX := drawX + pl.Anchor.X*scaleX
		boxW := item.LengthM * scaleX
		boxH := item.HeightM * scaleY
		boxY := drawY + drawH - (pl.Anchor.Z+item.HeightM)*scaleY

		r, g, b := presetColor(item.Type)
		pdf.SetFillColor(r, g, b)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(1.5)
		pdf.Rect(boxX, boxY, boxW, boxH, "FD")

		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.Text(boxX+2, boxY+10, fmt.Sprintf("ID%d", item.ID))
		pdf.SetFont("Helvetica", "", 7)
		pdf.Text(boxX+2, boxY+19, fmt.Sprintf("%.0fkg", item.WeightKg))
	}
	pdf.SetTextColor(0, 0, 0)
}

func drawLegend(pdf *gofpdf.Fpdf, placements []domain.Placement) {
	y := float64(560)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(50, y, "Items in This Quadrant:")
	y += 18

	pdf.SetFont("Helvetica", "", 9)
	for _, pl := range placements {
		if y > 740 {
			pdf.Text(50, y, "...and more")
			break
		}

		item := pl.Item
		r, g, b := presetColor(item.Type)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(50, y-9, 12, 12, "FD")

		label := string(item.Type)
		if preset, ok := domain.ItemPresets[item.Type]; ok {
			label = preset.Label
		}
		pdf.Text(70, y, fmt.Sprintf("ID%d: %s - %.0fkg - Priority %d", item.ID, label, item.WeightKg, item.Priority))
		y += 16
	}
}

func presetColor(t domain.ItemType) (int, int, int) {
	preset, ok := domain.ItemPresets[t]
	if !ok {
		return 128, 128, 128
	}
	return int(preset.Color[0] * 255), int(preset.Color[1] * 255), int(preset.Color[2] * 255)
}
