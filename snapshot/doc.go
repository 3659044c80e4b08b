// Package snapshot persists a point-in-time image of the extent
// index. An image carries the last applied sequence number, so a
// restart loads the image and replays only the log tail past it.
// Images are written to a temporary file and renamed into place; a
// crash mid-write leaves the previous image intact.
package snapshot
