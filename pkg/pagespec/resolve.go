package pagespec

// Resolve evaluates a PageSpec against a document's page count and returns
// the ordered selection with the spec's rotation attached to every entry.
//
// The base sequence steps from start to end inclusive, descending when
// start > end, and that order is preserved into the output. Qualifiers
// filter the sequence without disturbing relative order; omissions are then
// subtracted as inclusive numeric intervals regardless of the direction
// either range was written in.
func Resolve(spec PageSpec, pageCount int) ([]Selected, error) {
	if pageCount < 1 {
		return nil, &RangeError{Spec: spec.Raw, Page: 1, PageCount: pageCount}
	}
	start, err := resolveBound(spec, spec.Start, pageCount)
	if err != nil {
		return nil, err
	}
	end, err := resolveBound(spec, spec.End, pageCount)
	if err != nil {
		return nil, err
	}

	step := 1
	if start > end {
		step = -1
	}
	seq := make([]int, 0, (end-start)*step+1)
	for p := start; p != end+step; p += step {
		seq = append(seq, p)
	}

	if spec.Even || spec.Odd {
		kept := seq[:0]
		for _, p := range seq {
			if spec.Even && p%2 != 0 {
				continue
			}
			if spec.Odd && p%2 == 0 {
				continue
			}
			kept = append(kept, p)
		}
		seq = kept
	}

	for _, om := range spec.Omissions {
		lo := om.Start.value(pageCount)
		hi := om.End.value(pageCount)
		if lo > hi {
			lo, hi = hi, lo
		}
		kept := seq[:0]
		for _, p := range seq {
			if p >= lo && p <= hi {
				continue
			}
			kept = append(kept, p)
		}
		seq = kept
	}

	out := make([]Selected, len(seq))
	for i, p := range seq {
		out[i] = Selected{Page: p, Rotation: spec.Rotation}
	}
	return out, nil
}

// resolveBound substitutes the end sentinel and validates literal bounds
// against the document.
func resolveBound(spec PageSpec, ref PageRef, pageCount int) (int, error) {
	n := ref.value(pageCount)
	if !ref.IsEnd() && (n < 1 || n > pageCount) {
		return 0, &RangeError{Spec: spec.Raw, Page: n, PageCount: pageCount}
	}
	return n, nil
}

// PageNumbers returns just the page numbers of a selection.
func PageNumbers(sel []Selected) []int {
	out := make([]int, len(sel))
	for i, s := range sel {
		out[i] = s.Page
	}
	return out
}
