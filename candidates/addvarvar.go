package candidates

import "sort"

// AddVarVarCandidates enumerates (v, w) input-mask pairs for a 32-bit
// modular addition with fixed output mask u, weight <= weightCap, via a
// reference recursive DFS over the Schulte-Geers z-recurrence: starting
// from z_31 = 0 and walking bit 31 down to bit 0, each bit position is
// either forced (z_i == 0 forces v_i = w_i = u_i, no weight charged) or
// free (z_i == 1: all 4 combinations of (v_i, w_i) are valid, each
// contributing weight 1). Results are sorted by (weight, v, w) ascending
// and truncated to maxCandidates (<=0 means unbounded).
func AddVarVarCandidates(u uint32, weightCap, maxCandidates int) []AddCandidate {
	if weightCap < 0 {
		return nil
	}
	var out []AddCandidate
	var v, w uint32
	var dfs func(bit int, z uint32, weight int)
	dfs = func(bit int, z uint32, weight int) {
		if weight > weightCap {
			return
		}
		if bit < 0 {
			out = append(out, AddCandidate{InputMaskX: v, InputMaskY: w, Weight: weight})
			return
		}
		ui := (u >> uint(bit)) & 1
		if z == 0 {
			vi, wi := ui, ui
			v |= vi << uint(bit)
			w |= wi << uint(bit)
			nz := (ui ^ vi ^ wi) // == ui
			dfs(bit-1, nz, weight)
			v &^= 1 << uint(bit)
			w &^= 1 << uint(bit)
			return
		}
		for vi := uint32(0); vi < 2; vi++ {
			for wi := uint32(0); wi < 2; wi++ {
				v |= vi << uint(bit)
				w |= wi << uint(bit)
				nz := 1 ^ ui ^ vi ^ wi // z_i = 1 here
				dfs(bit-1, nz, weight+1)
				v &^= 1 << uint(bit)
				w &^= 1 << uint(bit)
			}
		}
	}
	dfs(31, 0, 0)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}
		if out[i].InputMaskX != out[j].InputMaskX {
			return out[i].InputMaskX < out[j].InputMaskX
		}
		return out[i].InputMaskY < out[j].InputMaskY
	})
	if maxCandidates > 0 && len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}
