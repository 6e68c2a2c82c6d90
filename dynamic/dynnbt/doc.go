// Package dynnbt implements dynamic.Ops[Tag] over an in-memory tag tree
// modeled on the Named Binary Tag format: distinct byte/short/int/long
// and float/double kinds instead of JSON's single number kind, and a
// string-keyed compound (map) plus an ordered list, same as dynjson and
// dynyaml. It has no wire codec (no ecosystem NBT library appears
// anywhere in the reference corpus); it is built purely to prove the
// engine's DynamicOps abstraction tolerates a backend with a richer,
// non-JSON numeric lattice, which is the kind of source schema real
// migrations (e.g. game save data) are written against.
package dynnbt
