// Package attr implements the keyed, string-valued attribute maps that
// carry styling data to renderings: Map lazily creates one Entry per
// attribute name and fires a ChangeHook whenever a Write actually changes
// the effective value.
package attr
