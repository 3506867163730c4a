// Package prompt is the out-of-scope interactive line-reader spec.md §1
// names as a collaborator of the core: it asks the user for the two
// per-platform argument strings the script builder splices into the
// extraction script, and returns them as plain strings.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

// ArgStrings reads the Linux and Windows argument lines from r, echoing
// prompts to w.
func ArgStrings(r io.Reader, w io.Writer) (linuxArgs, windowsArgs string, err error) {
	scanner := bufio.NewScanner(r)

	fmt.Fprint(w, "Linux command-line arguments (leave blank for none): ")
	linuxArgs, err = readLine(scanner)
	if err != nil {
		return "", "", err
	}

	fmt.Fprint(w, "Windows command-line arguments (leave blank for none): ")
	windowsArgs, err = readLine(scanner)
	if err != nil {
		return "", "", err
	}

	return linuxArgs, windowsArgs, nil
}

func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", pdverr.Wrap(pdverr.Io, err, "reading argument line")
		}
		return "", nil
	}
	return strings.TrimRight(scanner.Text(), "\r\n"), nil
}
