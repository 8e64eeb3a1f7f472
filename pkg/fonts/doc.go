// Package fonts provides the read-only font collaborator used during layout.
//
// A [Loader] holds an ordered list of parsed OpenType/TrueType fonts and
// answers two questions for layouters: which font covers a given rune (taking
// the requested font classes into account) and how wide that rune is at a
// given size. Lookups are memoized in a cache guarded by a sync.RWMutex, so a
// single Loader can be shared by independent layout passes running on
// different goroutines.
//
// The bundled Go fonts are registered with [Loader.LoadDefault]:
//
//	loader := fonts.NewLoader()
//	if err := loader.LoadDefault(); err != nil {
//	    return err
//	}
//	idx, err := loader.Query('A', fonts.SansSerif, fonts.Bold)
//
// Fonts are never mutated after loading; the loader does not shape text.
package fonts
