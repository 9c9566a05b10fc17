package questionbank

// Lookup returns the template pool for a topic.
//
// Unknown topics do not fail: they resolve to the general pool, which is the
// first three occupational-safety templates followed by the first two
// first-aid templates. The returned slice is a copy and may be modified.
func Lookup(topic Topic) []Template {
	switch topic {
	case TopicOccupationalSafety:
		return clonePool(occupationalSafetyPool)
	case TopicFirstAid:
		return clonePool(firstAidPool)
	case TopicFireSafety:
		return clonePool(fireSafetyPool)
	case TopicWorkAtHeight:
		return clonePool(workAtHeightPool)
	case TopicExplosives:
		return clonePool(explosivesPool)
	case TopicUndergroundMining:
		return clonePool(undergroundMiningPool)
	case TopicOther:
		return clonePool(otherPool)
	default:
		return clonePool(generalPool)
	}
}

// clonePool copies the template slice and the answer slices inside it so the
// package-level catalogs can never be mutated by callers.
func clonePool(pool []Template) []Template {
	out := make([]Template, len(pool))
	for i, t := range pool {
		t.Answers = append([]TemplateAnswer(nil), t.Answers...)
		out[i] = t
	}
	return out
}
