// Package vistest provides fixture builders and recording fakes for
// testing pkg/vis and pkg/treeview: build a small, named scenario once,
// then assert against what got recorded rather than hand-wiring the same
// tree shape in every test.
package vistest
