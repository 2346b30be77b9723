package domain

// SampleGroup is one statement of a sample list: a single sample, a nested list,
// or an optional block that produced nothing
type SampleGroup []Sample

// Single wraps one sample as a group
func Single(s Sample) SampleGroup {
	return SampleGroup{s}
}

// Group wraps several samples as one group, keeping their order
func Group(samples ...Sample) SampleGroup {
	return SampleGroup(samples)
}

// When evaluates build only if cond holds, otherwise it yields an empty group
func When(cond bool, build func() SampleGroup) SampleGroup {
	if !cond || build == nil {
		return nil
	}
	return build()
}

// CollectSamples flattens groups into one ordered list
// Empty groups (skipped optional blocks) contribute nothing
func CollectSamples(groups ...SampleGroup) []Sample {
	total := 0
	for _, g := range groups {
		total += len(g)
	}

	samples := make([]Sample, 0, total)
	for _, g := range groups {
		samples = append(samples, g...)
	}
	return samples
}
