package reconcile

// Unique returns the union of sources in first-seen order. Empty names are
// skipped. The inputs are not modified.
func Unique(sources ...[]PresetName) []PresetName {
	seen := make(map[PresetName]struct{})
	out := make([]PresetName, 0)
	for _, source := range sources {
		for _, name := range source {
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// CollectLegacy flattens the extends of every legacy layer, in layer order.
func CollectLegacy(layers ...LegacyConfig) []PresetName {
	lists := make([][]PresetName, 0, len(layers))
	for _, layer := range layers {
		lists = append(lists, layer.Extends)
	}
	return Unique(lists...)
}
