package duel

// outcome is the result of a duel between candidates i < j.
type outcome uint8

const (
	// noDuel: the distance is not below the threshold or has no witness.
	noDuel outcome = iota
	// outOfReach: the witness lies beyond the prefix being verified.
	outOfReach
	// leftWins: j is eliminated.
	leftWins
	// rightWins: i is eliminated.
	rightWins
	// bothLose: the contested character fits neither candidate.
	bothLose
	// undecided: the character fits both. A valid witness rules this out.
	undecided
)

func (o outcome) String() string {
	switch o {
	case noDuel:
		return "NoDuel"
	case outOfReach:
		return "OutOfReach"
	case leftWins:
		return "LeftWins"
	case rightWins:
		return "RightWins"
	case bothLose:
		return "BothLose"
	case undecided:
		return "Undecided"
	default:
		return "Unknown"
	}
}

// arbiter settles conflicts between close candidates.
//
// For i < j at distance d with witness h, both candidates make a claim about
// the single character z[j+h] (which is z[i+h+d]): j needs p[h], i needs
// p[h+d]. Since p[h] != p[h+d], at most one claim holds, and any candidate
// whose claim fails cannot start an occurrence.
//
// A duel is only fought when the contested character lies inside the prefix
// being verified (h+d < limit). A loser then cannot start an occurrence of
// that prefix, so duels never remove a candidate the stage must keep.
type arbiter struct {
	z       *sequence
	pattern []byte
	witness *WitnessTable
}

func (a *arbiter) duel(i, j, limit int) outcome {
	d := j - i
	h, ok := a.witness.Lookup(d)
	if !ok {
		return noDuel
	}
	if h+d >= limit {
		return outOfReach
	}

	// Past the end or on the separator: neither occurrence fits.
	c, ok := a.z.at(j + h)
	if !ok {
		return bothLose
	}

	rightFits := c == a.pattern[h]
	leftFits := c == a.pattern[h+d]
	switch {
	case rightFits && leftFits:
		return undecided
	case rightFits:
		return rightWins
	case leftFits:
		return leftWins
	default:
		return bothLose
	}
}
