// Package output is the output writer (component I): it picks a randomized
// result filename, retries on collision, writes the polyglot buffer, and
// sets the POSIX execute bit.
package output

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

const maxNameAttempts = 256

// Kind names the two output-filename prefixes: "pzip" for a plain ZIP
// payload, "pjar" for a JAR payload.
type Kind string

const (
	KindZip Kind = "pzip"
	KindJar Kind = "pjar"
)

// Write picks an unused "<kind>_NNNNN.png" filename in dir, writes data to
// it, sets mode 0755, and returns the chosen filename.
func Write(dir string, kind Kind, data []byte) (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := fmt.Sprintf("%s_%05d.png", kind, rand.Intn(100000))
		path := name
		if dir != "" {
			path = dir + string(os.PathSeparator) + name
		}

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0755)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			return "", pdverr.Wrap(pdverr.Io, err, "creating output file")
		}

		_, writeErr := f.Write(data)
		closeErr := f.Close()
		if writeErr != nil {
			return "", pdverr.Wrap(pdverr.Io, writeErr, "writing output file")
		}
		if closeErr != nil {
			return "", pdverr.Wrap(pdverr.Io, closeErr, "closing output file")
		}
		if err := os.Chmod(path, 0755); err != nil {
			return "", pdverr.Wrap(pdverr.Io, err, "setting execute bit on output file")
		}
		return name, nil
	}
	return "", pdverr.New(pdverr.Io, "could not find an unused output filename after 256 attempts")
}
