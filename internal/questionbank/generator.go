package questionbank

// Generator composes Lookup, Sample and Materialize. It holds no state
// between calls besides its randomness sources.
type Generator struct {
	rng Rand
	ids IDSource
}

// NewGenerator creates a Generator. Nil arguments fall back to the
// process-wide random source and UUIDSuffix.
func NewGenerator(rng Rand, ids IDSource) *Generator {
	if rng == nil {
		rng = globalRand{}
	}
	if ids == nil {
		ids = UUIDSuffix
	}
	return &Generator{rng: rng, ids: ids}
}

// Generate picks count questions for topic.
func (g *Generator) Generate(topic Topic, count int) []GeneratedQuestion {
	return Materialize(Sample(Lookup(topic), count, g.rng), g.ids)
}
