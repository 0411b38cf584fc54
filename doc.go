// Package kapst implements a lexer and parser for a small math-notation
// source language, producing a typeset-node tree rather than a numeric
// result. "2 x y" is an implicit multiplication of three terms, "a/b" lowers
// to a frac node, and "x^2_i" attaches both a superscript and a subscript to
// "x". Two external collaborators, a symbol table and a table of function
// handlers, decide how bare symbols and calls like frac(...) or sqrt(...)
// are classified and built; the package ships small default
// implementations of both so it is testable standalone.
package kapst
