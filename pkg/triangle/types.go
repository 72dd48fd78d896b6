/*****************************************************************************************************************/

//	@package	github.com/nks676/startracker
//	@license	Copyright © 2026 startracker

/*****************************************************************************************************************/

// Package triangle builds and searches a geometric hash of catalog star triples, canonicalized by
// their sorted pairwise angular separations, for lost-in-space pattern matching against an
// observed asterism extracted from a raster.
package triangle

/*****************************************************************************************************************/

// Triangle is a catalog star triple canonicalized by its three pairwise angular separations
// (radians), sorted ascending: A <= B <= C. Star1/Star2/Star3 are the catalog IDs of its
// vertices, in no particular correspondence to A/B/C — which physical pair produced which sorted
// side is resolved later, by Disambiguate, using the stars' actual positions.
type Triangle struct {
	Star1, Star2, Star3 int
	A, B, C             float64
}

/*****************************************************************************************************************/

// Zero is the sentinel returned by Match on no hit, mirroring the reference matcher's
// {-1, -1, -1, 0, 0, 0}.
var Zero = Triangle{Star1: -1, Star2: -1, Star3: -1}

/*****************************************************************************************************************/

// IsZero reports whether t is the no-match sentinel.
func (t Triangle) IsZero() bool {
	return t.Star1 == -1 && t.Star2 == -1 && t.Star3 == -1
}

/*****************************************************************************************************************/

// Index is a sorted-by-A catalog of Triangles, ready for binary-search range matching.
type Index struct {
	Triangles []Triangle
}

/*****************************************************************************************************************/
