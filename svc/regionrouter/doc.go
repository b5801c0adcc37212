// Package regionrouter implements the read side of the sticky region
// protocol. A request carrying a region cookie that names a known region with
// a usable URL is redirected there; everything else gets the region picker.
//
// The region cookie is unsigned. Its value only selects an entry from the
// configured directory, so a forged value can at worst pick another listed
// region or fall through to the picker.
package regionrouter
