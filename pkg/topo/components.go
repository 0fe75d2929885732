package topo

// FaceComponents labels the connected components of the face list,
// where faces are connected when they share any unique edge. It
// returns the component count and the component id of every face.
func FaceComponents(em *EdgeMap) (int, []int) {
	faceComp := make([]int, em.numFaces)
	for i := range faceComp {
		faceComp[i] = -1
	}

	numComps := 0
	var queue []int
	for seed := 0; seed < em.numFaces; seed++ {
		if faceComp[seed] != -1 {
			continue
		}
		cid := numComps
		numComps++
		faceComp[seed] = cid
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]
			for c := 0; c < 3; c++ {
				for _, he := range em.EdgeHalfEdges[em.FaceEdge[fi][c]] {
					nf := em.HalfEdgeFace(he)
					if faceComp[nf] == -1 {
						faceComp[nf] = cid
						queue = append(queue, nf)
					}
				}
			}
		}
	}
	return numComps, faceComp
}
