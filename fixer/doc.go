// Package fixer implements the migration engine proper: DataFix,
// FixRegistrar, DataFixer and DataFixerBootstrap (spec §4.6–§4.8). A
// DataFixer folds the fixes registered for a TaggedDynamic's type over
// its value across a version range, producing a new TaggedDynamic at
// the target version.
package fixer
