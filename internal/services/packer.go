package services

import (
	"airlift-load-service/internal/domain"
	"math"
)

// Per-run packing state for one quadrant: a shelf that fills along the
// length axis. Rebuilt fresh for every generation.
type quadrantBin struct {
	quadrant domain.Quadrant
	lengthM  float64
	widthM   float64
	heightM  float64

	shelfM   float64
	weightKg float64
	volumeM3 float64
}

func newQuadrantBins(p domain.AircraftProfile) [4]*quadrantBin {
	var bins [4]*quadrantBin
	for i, q := range domain.Quadrants {
		bins[i] = &quadrantBin{
			quadrant: q,
			lengthM:  p.BayLengthM / 2,
			widthM:   p.BayWidthM / 2,
			heightM:  p.BayHeightM,
		}
	}
	return bins
}

// fits reports whether the item fits between the current shelf offset and
// the quadrant's far edge on all three axes.
func (b *quadrantBin) fits(item domain.CargoItem) bool {
	return item.LengthM <= b.lengthM-b.shelfM &&
		item.WidthM <= b.widthM &&
		item.HeightM <= b.heightM
}

// place accepts the item at the current shelf offset and advances the shelf.
func (b *quadrantBin) place(item domain.CargoItem) domain.Placement {
	pl := domain.Placement{
		Item:     item,
		Quadrant: b.quadrant,
		Anchor:   domain.Vec3{X: b.shelfM},
	}
	b.shelfM += item.LengthM
	b.weightKg += item.WeightKg
	b.volumeM3 += item.VolumeM3()
	return pl
}

// PackItems assigns each ordered item to a quadrant or marks it unplaced.
//
// A single forward pass: per item, the candidate quadrants are those with
// shelf room on all axes that also keep the aircraft under MaxWeightKg.
// Among candidates the packer picks the one whose post-addition weight is
// closest to the post-addition mean across all four quadrants, so skew is
// minimized greedily. Ties fall to the fixed quadrant order (front-left,
// front-right, rear-left, rear-right). There is no backtracking and no
// reordering after a failed item, which keeps the pass O(n) and the output
// reproducible.
func PackItems(
	p domain.AircraftProfile,
	ordered []domain.CargoItem,
) (placements []domain.Placement, unplaced []domain.CargoItem, quadrantWeights [4]float64) {
	bins := newQuadrantBins(p)

	placements = make([]domain.Placement, 0, len(ordered))
	unplaced = make([]domain.CargoItem, 0)

	totalKg := 0.0

	for _, item := range ordered {
		if totalKg+item.WeightKg > p.MaxWeightKg {
			unplaced = append(unplaced, item)
			continue
		}

		// Mean quadrant weight as it would be after this item is aboard.
		meanKg := (totalKg + item.WeightKg) / 4

		var best *quadrantBin
		bestSkew := math.Inf(1)
		for _, bin := range bins {
			if !bin.fits(item) {
				continue
			}
			skew := math.Abs(bin.weightKg + item.WeightKg - meanKg)
			if skew < bestSkew {
				bestSkew = skew
				best = bin
			}
		}

		if best == nil {
			unplaced = append(unplaced, item)
			continue
		}

		placements = append(placements, best.place(item))
		totalKg += item.WeightKg
	}

	for i, bin := range bins {
		quadrantWeights[i] = bin.weightKg
	}
	return placements, unplaced, quadrantWeights
}
