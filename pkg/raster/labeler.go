/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

// label performs two-pass 4-connectivity connected-components labeling over the foreground mask,
// in raster (row-major) order, exactly per spec §4.2. Labels start at 1; 0 means background.
// Equivalences discovered when both the left and top neighbors are foreground but carry
// different labels are resolved via a UnionFind, and every foreground pixel is
// relabeled to its resolved root before returning.
func label(mask []bool, width, height int) []int {
	labels := make([]int, len(mask))

	// Capacity must be at least N/2 + 1 to bound the label count, per spec §4.2. At most ⌈N/2⌉
	// fresh labels can be issued, so the integer division rounds N/2 up.
	uf := NewUnionFind((len(mask)+1)/2 + 1)

	next := 1

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x

			if !mask[idx] {
				continue
			}

			left := 0
			if x > 0 && mask[idx-1] {
				left = labels[idx-1]
			}

			top := 0
			if y > 0 && mask[idx-width] {
				top = labels[idx-width]
			}

			switch {
			case left == 0 && top == 0:
				labels[idx] = next
				next++
			case left != 0 && top == 0:
				labels[idx] = left
			case left == 0 && top != 0:
				labels[idx] = top
			default:
				labels[idx] = left
				if left != top {
					uf.Unite(left, top)
				}
			}
		}
	}

	for i, l := range labels {
		if l != 0 {
			labels[i] = uf.Find(l)
		}
	}

	return labels
}

/*****************************************************************************************************************/
