// Package scope provides the render scopes that mounted components run in.
//
// Every mount creates a root Owner. The component body runs inside a branch
// Owner under that root, and nested components get their own branches. When
// the root is disposed, every branch, effect and cleanup beneath it is torn
// down, children first and in reverse creation order.
//
// Context values travel separately on a Frame stack: a mount that supplies a
// context map pushes a frame for the duration of the component body so
// descendants can look values up by key.
package scope
