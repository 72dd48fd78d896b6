/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

package raster

/*****************************************************************************************************************/

import "sort"

/*****************************************************************************************************************/

// buildClusters groups resolved labels into Cluster records, computes each cluster's
// intensity-weighted centroid and total intensity, drops any cluster whose total intensity is
// not strictly positive, sorts the survivors descending by total intensity, and caps the list at
// maxTopClusters — per spec §4.3.
func buildClusters(pixels []float64, labels []int, width int, maxTopClusters int) []Cluster {
	order := make([]int, 0)
	byRoot := make(map[int]int) // root label -> index into `clusters`

	var clusters []Cluster

	for i, root := range labels {
		if root == 0 {
			continue
		}

		idx, ok := byRoot[root]
		if !ok {
			idx = len(clusters)
			byRoot[root] = idx
			clusters = append(clusters, Cluster{ID: root})
			order = append(order, root)
		}

		x := i % width
		y := i / width

		clusters[idx].Pixels = append(clusters[idx].Pixels, Pixel{X: x, Y: y, Intensity: pixels[i]})
	}

	survivors := clusters[:0]

	for _, c := range clusters {
		var sumX, sumY, sumI float64

		for _, p := range c.Pixels {
			sumX += float64(p.X) * p.Intensity
			sumY += float64(p.Y) * p.Intensity
			sumI += p.Intensity
		}

		if sumI <= 0 {
			continue
		}

		c.CentroidX = sumX / sumI
		c.CentroidY = sumY / sumI
		c.TotalIntensity = sumI

		survivors = append(survivors, c)
	}

	sort.Slice(survivors, func(i, j int) bool {
		return survivors[i].TotalIntensity > survivors[j].TotalIntensity
	})

	if len(survivors) > maxTopClusters {
		survivors = survivors[:maxTopClusters]
	}

	return survivors
}

/*****************************************************************************************************************/
