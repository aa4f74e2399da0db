// Package render provides the element tree the site controllers draw into.
//
// An Element stands in for a node of a rendered page: it carries an id, a
// class list, declarative data attributes, text, a fill width, a visibility
// flag, a color and an input value. Controllers only depend on the Target
// capability so their logic can be exercised against plain elements in tests,
// while the terminal host reads the same elements back to paint a frame.
//
// Events follow the familiar listener model. Controllers attach listeners with
// On and hosts deliver user input with Dispatch. A Document owns the root
// element plus the page-level signals: the ready event and visibility changes.
package render
