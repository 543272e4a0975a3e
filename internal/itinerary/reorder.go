package itinerary

// Move takes the activity out of its day and inserts it into the target day.
//
// targetIndex is a drop position in the target day as it is displayed before
// the move: 0 is above the first card, len is below the last one. For a move
// inside the same day, positions past the source slot shift up by one once the
// activity is lifted out, so dropping an activity directly above or below
// itself leaves the day as it was. Out of range indexes are clamped.
func Move(it Itinerary, activityID, targetDayID string, targetIndex int) Result {
	srcDay, srcPos := it.locate(activityID)
	if srcDay < 0 {
		return unchanged(it, ErrActivityNotFound)
	}
	dstDay := it.dayIndex(targetDayID)
	if dstDay < 0 {
		return unchanged(it, ErrDayNotFound)
	}

	moved := it[srcDay].Activities[srcPos]
	remaining := removeAt(it[srcDay].Activities, srcPos)

	target := it[dstDay].Activities
	if dstDay == srcDay {
		target = remaining
		if targetIndex > srcPos {
			targetIndex--
		}
	}
	targetIndex = clamp(targetIndex, 0, len(target))

	if dstDay == srcDay && targetIndex == srcPos {
		return unchanged(it, nil)
	}

	out := make(Itinerary, len(it))
	copy(out, it)
	out[srcDay] = it[srcDay].withActivities(remaining)
	out[dstDay] = out[dstDay].withActivities(insertAt(target, targetIndex, moved))
	return ok(out)
}

func removeAt(acts []Activity, i int) []Activity {
	out := make([]Activity, 0, len(acts)-1)
	out = append(out, acts[:i]...)
	return append(out, acts[i+1:]...)
}

func insertAt(acts []Activity, i int, a Activity) []Activity {
	out := make([]Activity, 0, len(acts)+1)
	out = append(out, acts[:i]...)
	out = append(out, a)
	return append(out, acts[i:]...)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
