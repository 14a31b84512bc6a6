// Package naming implements the filename conventions of a quire workspace.
//
// A note lives in a file named "{number}-{slug}.md". The number is the
// ordering key and the slug is derived from the note's title. Nothing else
// about a note's position is stored anywhere, so every function here is pure
// and works on stems and strings only.
package naming
