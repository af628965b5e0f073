package profile

import (
	"github.com/cameronsjo/lxd-profile/internal/document"
)

// MismatchFunc is called when an overlay value is dropped because its kind
// differs from the base value at path.
type MismatchFunc func(path string, base, overlay document.Value)

// Merge recursively merges overlay into base and returns a new value.
// Neither input is modified and the result shares no state with them.
// Merge semantics:
//   - base absent: overlay wins
//   - kinds differ: base wins, overlay is discarded
//   - both mappings: recursive merge, overlay-only keys appended in order
//   - both sequences: base items followed by overlay items
//   - both scalars: overlay wins
func Merge(base, overlay document.Value) document.Value {
	return mergeInternal(base, overlay, "", nil)
}

// MergeWith is Merge with a callback reporting discarded overlay values.
func MergeWith(base, overlay document.Value, onMismatch MismatchFunc) document.Value {
	return mergeInternal(base, overlay, "", onMismatch)
}

func mergeInternal(base, overlay document.Value, path string, onMismatch MismatchFunc) document.Value {
	if base.IsAbsent() {
		return overlay.Clone()
	}

	if !document.SameKind(base, overlay) {
		if onMismatch != nil {
			onMismatch(path, base, overlay)
		}
		return base.Clone()
	}

	switch base.Kind() {
	case document.KindMapping:
		return mergeMappings(base.Map(), overlay.Map(), path, onMismatch)

	case document.KindSequence:
		items := make([]document.Value, 0, base.Len()+overlay.Len())
		for _, item := range base.Items() {
			items = append(items, item.Clone())
		}
		for _, item := range overlay.Items() {
			items = append(items, item.Clone())
		}
		return document.Seq(items...)

	default:
		return overlay.Clone()
	}
}

func mergeMappings(base, overlay *document.Map, path string, onMismatch MismatchFunc) document.Value {
	result := base.Clone()

	for _, key := range overlay.Keys() {
		currentPath := key
		if path != "" {
			currentPath = path + "." + key
		}

		overlayValue, _ := overlay.Get(key)
		baseValue, exists := result.Get(key)
		if !exists {
			result.Set(key, overlayValue.Clone())
			continue
		}
		result.Set(key, mergeInternal(baseValue, overlayValue, currentPath, onMismatch))
	}

	return document.Mapping(result)
}
