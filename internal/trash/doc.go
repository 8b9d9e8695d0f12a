// Package trash moves files to a recoverable location instead of unlinking them.
//
// Implementations:
//   - Freedesktop: the freedesktop.org Trash specification used by Linux and BSD desktops
//     ($XDG_DATA_HOME/Trash, falling back to $topdir/.Trash-$uid across filesystems)
//   - MacOS: the per-user ~/.Trash folder
//   - Unsupported: always fails with extscan.ErrTrashUnavailable
//   - Memory: an in-memory fake for tests
//
// Every move is a single rename, so an interrupted process leaves each file
// either in place or fully in the trash.
package trash
