// Package finder implements Finder, a small composable path optic over
// dynamic.Dynamic modeled on the walker package's path-tracking style
// (JSONPath-like ids accumulated as traversal composes) but expressed as
// pure get/set functions instead of a visitor callback, since Dynamic
// trees are immutable values rather than something walked in place.
package finder
