// Package delegate implements event delegation for mounted components.
//
// Components never attach listeners to the nodes they render. Instead they
// set delegated handlers on nodes (host.Node.SetHandler) and declare the
// event names they use. For every declared name the Registry keeps exactly
// one listener at the document and one listener per mount container.
//
// Document listeners are reference counted across mounts: the listener is
// attached on the 0->1 transition and removed on the 1->0 transition, no
// matter the order in which mounts are torn down. Container listeners belong
// to a single mount Handle and are removed with it.
package delegate
