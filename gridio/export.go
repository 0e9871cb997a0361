package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/imece/terrain"
)

// DefaultGrayscaleFile is the conventional name of the grayscale export.
const DefaultGrayscaleFile = "grayscaleMap.dat"

// WriteGrayscale writes g rescaled onto 0..255, one row per line, values
// separated by single spaces with no trailing space.
func WriteGrayscale(w io.Writer, g *terrain.Grid) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 4*g.Width())
	for _, row := range g.Grayscale() {
		buf = buf[:0]
		for c, v := range row {
			if c > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendUint(buf, uint64(v), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteGrayscaleFile creates path, compressing by extension, and calls
// WriteGrayscale. The file is complete only if the returned error is nil.
func WriteGrayscaleFile(path string, g *terrain.Grid) (err error) {
	wc, err := createWriter(path)
	if err != nil {
		return fmt.Errorf("gridio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("gridio: close %s: %w", path, cerr)
		}
	}()

	if err = WriteGrayscale(wc, g); err != nil {
		return fmt.Errorf("gridio: write %s: %w", path, err)
	}

	return nil
}
