package topo

import "fmt"

// ManifoldPatches groups faces into maximal patches connected through
// manifold (degree-2) edges only. It returns the patch count and the
// patch id of every face. Every face belongs to exactly one patch.
func ManifoldPatches(em *EdgeMap) (int, []int) {
	facePatch := make([]int, em.numFaces)
	for i := range facePatch {
		facePatch[i] = -1
	}

	numPatches := 0
	var queue []int
	for seed := 0; seed < em.numFaces; seed++ {
		if facePatch[seed] != -1 {
			continue
		}
		pid := numPatches
		numPatches++
		facePatch[seed] = pid
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]
			for c := 0; c < 3; c++ {
				e := em.FaceEdge[fi][c]
				if !em.Manifold(e) {
					continue
				}
				for _, he := range em.EdgeHalfEdges[e] {
					nf := em.HalfEdgeFace(he)
					if facePatch[nf] == -1 {
						facePatch[nf] = pid
						queue = append(queue, nf)
					}
				}
			}
		}
	}
	return numPatches, facePatch
}

// PatchLabels derives the label of each patch from per-face labels.
// All faces of a patch must agree; a mixed patch is an input error.
func PatchLabels(faceLabels []int, facePatch []int, numPatches int) ([]int, error) {
	labels := make([]int, numPatches)
	for i := range labels {
		labels[i] = -1
	}
	for fi, p := range facePatch {
		l := 0
		if faceLabels != nil {
			l = faceLabels[fi]
		}
		switch labels[p] {
		case -1:
			labels[p] = l
		case l:
		default:
			return nil, fmt.Errorf("topo: patch %d mixes labels %d and %d (face %d)", p, labels[p], l, fi)
		}
	}
	return labels, nil
}
