package mediatest

// Period is one contiguous piece of media in a Timeline. The UID is an
// opaque, run-dependent identity (pointer values in the library under
// test); everything else is stable content.
type Period struct {
	UID        interface{}
	ID         string
	DurationUs int64
}

// Timeline is a minimal sequence of periods, sufficient for asserting
// on the structure a media source exposes.
type Timeline struct {
	Periods []Period
}

// MaskUIDs returns a copy of t with every period uid zeroed. Uids are
// typically freshly allocated objects, so two otherwise identical
// timelines from different runs never compare equal; masking makes
// structural comparison and dumping stable. The input is not modified.
func MaskUIDs(t Timeline) Timeline {
	periods := make([]Period, len(t.Periods))
	copy(periods, t.Periods)
	for i := range periods {
		periods[i].UID = 0
	}
	return Timeline{Periods: periods}
}

// DumpTo writes the timeline structure into d.
func (t Timeline) DumpTo(d *Dumper) {
	d.Add("periodCount", len(t.Periods))
	for _, p := range t.Periods {
		d.StartBlock("period " + p.ID)
		d.Add("uid", p.UID)
		d.AddTime("durationUs", p.DurationUs)
		d.EndBlock()
	}
}
