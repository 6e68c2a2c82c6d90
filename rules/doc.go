// Package rules implements TypeRewriteRule and the Rules factory: the
// composable transforms the fixer engine folds over Dynamic trees. A
// Rule is a pure function of (TypeReference, Dynamic) to Dynamic;
// combinators (Seq, All, TopDown, BottomUp, Everywhere, Conditional)
// build bigger rules out of smaller ones, and the field-primitive
// constructors in fields.go build the leaves.
package rules
