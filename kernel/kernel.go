package kernel

import (
	"sort"

	"github.com/arxlab/neoalz/bitops"
	"github.com/arxlab/neoalz/candidates"
	"github.com/arxlab/neoalz/cipher"
)

// reverseMix undoes one XOR-rotate mixing pair. Forward: x2 = x1 ^
// rotl(y1, r0); y2 = y1 ^ rotl(x2, r1). Given the masks on (x2, y2) this
// returns the masks on (x1, y1), derived by walking the two assignments
// in reverse program order and pulling each mask back through rotl's
// transpose, rotr.
func reverseMix(mX2, mY2 uint32, r0, r1 int) (mX1, mY1 uint32) {
	mX1 = mX2 ^ bitops.Rotr32(mY2, r1)
	mY1 = mY2 ^ bitops.Rotr32(mX1, r0)
	return mX1, mY1
}

func addEnumerator(useHighway bool) func(u uint32, weightCap, maxCandidates int) []candidates.AddCandidate {
	if useHighway {
		return candidates.AddVarVarCandidatesHighway
	}
	return candidates.AddVarVarCandidates
}

// RoundPredecessors walks one NeoAlzette round in reverse, given the
// correlation masks on its output boundary (outMaskA, outMaskB), and
// returns every predecessor boundary mask pair reachable within
// caps.WeightCap, with its six-gate weight breakdown.
//
// The walk mirrors cipher.Forward's instruction order exactly, reversed:
// subround 2 (injection A->B, SUB2, ADD2) undoes first since it runs
// last going forward, then subround 1 (injection B->A, SUB1, ADD1). Each
// modular addition is treated as a genuine var-var gate between the
// surviving branch and a linear (rotate-XOR) term of the other branch;
// the term's transpose (Description.TermTranspose) folds the mask
// candidates.AddVarVarCandidates hands back for that operand onto the
// branch variable feeding it, XORed with whatever mask that same
// variable already picked up from the adjacent SUB gate reading it
// directly.
func RoundPredecessors(desc cipher.Description, outMaskA, outMaskB uint32, caps Caps) []RoundTrailStep {
	if caps.WeightCap < 0 {
		return nil
	}
	addCandidatesFor := addEnumerator(caps.UseHighway)

	var results []RoundTrailStep

	trInjA := desc.InjectionA.Transition(outMaskB)
	if trInjA.Weight > caps.WeightCap {
		return nil
	}
	remAfterInjA := caps.WeightCap - trInjA.Weight

	for _, minj := range candidates.InjectionMasks(trInjA, caps.MaxInjectionMasks) {
		maskA3p := outMaskA ^ minj
		maskB3p := outMaskB

		maskA2p := desc.ApplyL2Transpose(maskA3p)
		maskB2p := desc.ApplyL1Transpose(maskB3p)
		maskB1p, maskA1p := reverseMix(maskB2p, maskA2p, desc.MixRotate[0], desc.MixRotate[1])

		subCands2 := candidates.SubConstCandidates(maskB1p, desc.RoundConstants[6], remAfterInjA, caps.MaxSubCandidates, true)
		for _, sc2 := range subCands2 {
			remAfterSub2 := remAfterInjA - sc2.Weight
			if remAfterSub2 < 0 {
				continue
			}

			for _, ac2 := range addCandidatesFor(maskA1p, remAfterSub2, caps.MaxAddCandidates) {
				remAfterAdd2 := remAfterSub2 - ac2.Weight
				if remAfterAdd2 < 0 {
					continue
				}
				subround2Weight := trInjA.Weight + sc2.Weight + ac2.Weight

				ma1 := ac2.InputMaskX
				mb1 := sc2.InputMask ^ desc.TermTranspose(ac2.InputMaskY)

				if more := subround1Predecessors(desc, ma1, mb1, remAfterAdd2, caps, addCandidatesFor); more != nil {
					for _, s1 := range more {
						results = append(results, RoundTrailStep{
							OutMaskA: outMaskA, OutMaskB: outMaskB,
							InMaskA: s1.inMaskA, InMaskB: s1.inMaskB,
							Subround2InjectionWeight: trInjA.Weight,
							Subround2SubWeight:       sc2.Weight,
							Subround2AddWeight:       ac2.Weight,
							Subround1InjectionWeight: s1.injWeight,
							Subround1SubWeight:       s1.subWeight,
							Subround1AddWeight:       s1.addWeight,
							Weight:                   subround2Weight + s1.injWeight + s1.subWeight + s1.addWeight,
						})
						if caps.MaxPredecessors > 0 && len(results) >= caps.MaxPredecessors {
							sortTrailSteps(results)
							return results
						}
					}
				}
			}
		}
	}

	sortTrailSteps(results)
	return results
}

type subround1Result struct {
	inMaskA, inMaskB             uint32
	injWeight, subWeight, addWeight int
}

// subround1Predecessors undoes subround 1 (injection B->A, SUB1, ADD1)
// given the masks (ma1, mb1) that correlate with its output (A4, B3),
// i.e. the masks handed back by subround 2's reversal.
func subround1Predecessors(desc cipher.Description, ma1, mb1 uint32, budget int, caps Caps, addCandidatesFor func(uint32, int, int) []candidates.AddCandidate) []subround1Result {
	if budget < 0 {
		return nil
	}

	trInjB := desc.InjectionB.Transition(ma1)
	if trInjB.Weight > budget {
		return nil
	}
	remAfterInjB := budget - trInjB.Weight

	var out []subround1Result
	for _, minj := range candidates.InjectionMasks(trInjB, caps.MaxInjectionMasks) {
		maskB3Total := mb1 ^ minj
		maskA3 := ma1

		maskA2 := desc.ApplyL1Transpose(maskA3)
		maskB2 := desc.ApplyL2Transpose(maskB3Total)
		maskA1, maskB1 := reverseMix(maskA2, maskB2, desc.MixRotate[0], desc.MixRotate[1])

		subCands1 := candidates.SubConstCandidates(maskA1, desc.RoundConstants[1], remAfterInjB, caps.MaxSubCandidates, true)
		for _, sc1 := range subCands1 {
			remAfterSub1 := remAfterInjB - sc1.Weight
			if remAfterSub1 < 0 {
				continue
			}
			for _, ac1 := range addCandidatesFor(maskB1, remAfterSub1, caps.MaxAddCandidates) {
				if ac1.Weight > remAfterSub1 {
					continue
				}
				inMaskB := ac1.InputMaskX
				inMaskA := sc1.InputMask ^ desc.TermTranspose(ac1.InputMaskY)
				out = append(out, subround1Result{
					inMaskA: inMaskA, inMaskB: inMaskB,
					injWeight: trInjB.Weight, subWeight: sc1.Weight, addWeight: ac1.Weight,
				})
			}
		}
	}
	return out
}

func sortTrailSteps(steps []RoundTrailStep) {
	sort.Slice(steps, func(i, j int) bool {
		if steps[i].Weight != steps[j].Weight {
			return steps[i].Weight < steps[j].Weight
		}
		if steps[i].InMaskA != steps[j].InMaskA {
			return steps[i].InMaskA < steps[j].InMaskA
		}
		return steps[i].InMaskB < steps[j].InMaskB
	})
}
