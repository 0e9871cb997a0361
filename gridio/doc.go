// Package gridio moves elevation grids in and out of text files.
//
//   - Load / LoadFile read whitespace-separated integers in row-major order
//     into a terrain.Grid of a fixed size. Extra trailing data is ignored;
//     too little data is ErrShortData.
//   - WriteGrayscale / WriteGrayscaleFile write the grid rescaled onto 0..255
//     (terrain.Grid.Grayscale) as one space-separated row per line.
//
// File names ending in ".lz4" or ".zst"/".zstd" are transparently
// decompressed on read and compressed on write; anything else is plain text.
//
// Every failure is returned to the caller; nothing is printed or swallowed.
package gridio
