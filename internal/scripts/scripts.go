// Package scripts is the script builder (component F): it selects one of
// the ten extraction-script templates in templates.go by FileType, splices
// the first archive filename and the user's Linux/Windows argument strings
// into each template's fixed slots, and wraps the result in a valid iCCP
// chunk (length, name, data, CRC), padding the data 8 bytes at a time (at
// most maxPadIterations times) while the low byte (index 3) of the
// big-endian length field would otherwise be hostile.
package scripts

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/CleasbyCode/pdvzip-go/internal/archivewrap"
	"github.com/CleasbyCode/pdvzip-go/internal/chunk"
	"github.com/CleasbyCode/pdvzip-go/internal/hostile"
	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

const maxChunkSize = 1500
const maxPadIterations = 5

// profileHeader is the fixed iCCP envelope prefix preceding the spliced
// template: an ICC profile name ("DVZIP__" + NUL) and a compression-method
// byte (always 0, deflate/inflate being the only defined method — here
// unused since the "compressed" profile is actually the shell script).
var profileHeader = append([]byte("DVZIP__\x00"), 0x00)

// shellNoOp is a CR-SP-"REM;"-CRLF sequence: read by a POSIX shell as part
// of the chunk preamble it is a harmless no-op/label before the real script
// begins a few bytes later.
var shellNoOp = []byte("\r REM;\r\n")

// template returns the immutable byte template for a FileType.
func template(ft archivewrap.FileType) ([]byte, error) {
	switch ft {
	case archivewrap.VideoAudio:
		return videoAudioTemplate, nil
	case archivewrap.PDF:
		return pdfTemplate, nil
	case archivewrap.Python:
		return pythonTemplate, nil
	case archivewrap.PowerShell:
		return powerShellTemplate, nil
	case archivewrap.BashShell:
		return bashShellTemplate, nil
	case archivewrap.WindowsExecutable:
		return windowsExecutableTemplate, nil
	case archivewrap.Folder:
		return folderTemplate, nil
	case archivewrap.LinuxExecutable:
		return linuxExecutableTemplate, nil
	case archivewrap.JAR:
		return jarTemplate, nil
	case archivewrap.UnknownFileType:
		return unknownFileTypeTemplate, nil
	default:
		return nil, pdverr.Newf(pdverr.Invariant, "unknown file type %d", ft)
	}
}

// Args bundles the two user-supplied, per-platform argument strings.
type Args struct {
	Linux   string
	Windows string
}

// ValidateArgs enforces spec.md §4.F's quote-balance rule: an escape prefix
// '\' excludes the following quote character from the count.
func ValidateArgs(a Args) error {
	for _, s := range []string{a.Linux, a.Windows} {
		if !balancedQuotes(s) {
			return pdverr.Newf(pdverr.BadArguments, "unbalanced quotes in argument string: %q", s)
		}
	}
	return nil
}

func balancedQuotes(s string) bool {
	var single, double int
	escaped := false
	for _, r := range s {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '\'':
			single++
		case '"':
			double++
		}
	}
	return single%2 == 0 && double%2 == 0
}

// slot is one marker-anchored splice point within an immutable template.
// The marker is searched for at build time (never hardcoded as a numeric
// offset — see DESIGN.md) in the buffer as spliced by the earlier slots, and
// its first occurrence there is used, so slot order matters where a marker
// (e.g. `""`) also appears inside an earlier slot's marker.
type slot struct {
	marker      string
	insertAfter int // bytes into marker at which to insert the value
	value       func(filename string, a Args) (string, bool)
}

func filenameValue(filename string, _ Args) (string, bool) { return filename, true }

func linuxArgsValue(_ string, a Args) (string, bool) {
	if a.Linux == "" {
		return "", false
	}
	return a.Linux, true
}

func windowsArgsValue(_ string, a Args) (string, bool) {
	if a.Windows == "" {
		return "", false
	}
	return a.Windows, true
}

// linuxArgsWithLeadingSpace and windowsArgsWithLeadingSpace are for markers
// (jarTemplate) that, unlike the others, have no pre-existing separating
// space before the splice point.
func linuxArgsWithLeadingSpace(_ string, a Args) (string, bool) {
	if a.Linux == "" {
		return "", false
	}
	return " " + a.Linux, true
}

func windowsArgsWithLeadingSpace(_ string, a Args) (string, bool) {
	if a.Windows == "" {
		return "", false
	}
	return " " + a.Windows, true
}

// windowsExecutableValue is windowsExecutableTemplate's single trailing ""
// slot, which must carry both the filename and (if given) the args, since
// that template defines no separate ARGS variable.
func windowsExecutableValue(filename string, a Args) (string, bool) {
	if a.Windows == "" {
		return filename, true
	}
	return filename + " " + a.Windows, true
}

// slotsFor returns the ordered splice slots for a FileType, each anchored to
// a literal marker substring located fresh (via bytes.Index) at splice time
// rather than a hardcoded numeric offset — see DESIGN.md's note on why
// spec.md §4.F's offset table does not match the recovered template bytes.
func slotsFor(ft archivewrap.FileType) []slot {
	switch ft {
	case archivewrap.VideoAudio, archivewrap.PDF, archivewrap.UnknownFileType:
		return []slot{
			{marker: `ITEM=""`, insertAfter: 6, value: filenameValue},
			{marker: `""`, insertAfter: 1, value: filenameValue},
		}
	case archivewrap.Folder:
		return []slot{
			{marker: `ITEM=""`, insertAfter: 6, value: filenameValue},
			{marker: `''`, insertAfter: 1, value: filenameValue},
		}
	case archivewrap.WindowsExecutable:
		return []slot{
			{marker: `""`, insertAfter: 1, value: windowsExecutableValue},
		}
	case archivewrap.LinuxExecutable:
		return []slot{
			{marker: `ITEM=""`, insertAfter: 6, value: filenameValue},
			{marker: `./"$ITEM" ;exit`, insertAfter: 10, value: linuxArgsValue},
		}
	case archivewrap.BashShell:
		return []slot{
			{marker: `ITEM=""`, insertAfter: 6, value: filenameValue},
			{marker: `./"$ITEM" ;exit`, insertAfter: 10, value: linuxArgsValue},
			{marker: `""`, insertAfter: 1, value: filenameValue},
		}
	case archivewrap.Python:
		return []slot{
			{marker: `set ITEM=&`, insertAfter: 9, value: filenameValue},
			{marker: `set ARGS=&`, insertAfter: 9, value: windowsArgsValue},
			{marker: `ITEM=""`, insertAfter: 6, value: filenameValue},
			{marker: `"$ITEM" ;else`, insertAfter: 8, value: linuxArgsValue},
		}
	case archivewrap.PowerShell:
		return []slot{
			{marker: `set ITEM=&`, insertAfter: 9, value: filenameValue},
			{marker: `set ARGS=&`, insertAfter: 9, value: windowsArgsValue},
			{marker: `ITEM=""`, insertAfter: 6, value: filenameValue},
			{marker: `"$ITEM" ;else`, insertAfter: 8, value: linuxArgsValue},
		}
	case archivewrap.JAR:
		return []slot{
			{marker: `-jar "%~dpnx0")`, insertAfter: 14, value: windowsArgsWithLeadingSpace},
			{marker: `-jar "$0";else`, insertAfter: 9, value: linuxArgsWithLeadingSpace},
		}
	default:
		return nil
	}
}

// splice applies every slot for ft to a fresh copy of its template.
func splice(ft archivewrap.FileType, filename string, a Args) ([]byte, error) {
	tmpl, err := template(ft)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(tmpl))
	copy(buf, tmpl)

	for _, s := range slotsFor(ft) {
		val, ok := s.value(filename, a)
		if !ok {
			continue
		}
		idx := bytes.Index(buf, []byte(s.marker))
		if idx < 0 {
			return nil, pdverr.Newf(pdverr.Invariant, "splice marker %q not found in template for file type %d", s.marker, ft)
		}
		insertAt := idx + s.insertAfter
		out := make([]byte, 0, len(buf)+len(val))
		out = append(out, buf[:insertAt]...)
		out = append(out, val...)
		out = append(out, buf[insertAt:]...)
		buf = out
	}
	return buf, nil
}

// Build runs the full script-builder algorithm: template selection via ft,
// splicing, iCCP envelope construction, length/CRC patching, and the
// bounded hostile-length-byte pad loop. Returns the finished iCCP chunk
// bytes (length ‖ "iCCP" ‖ data ‖ crc).
func Build(ft archivewrap.FileType, filename string, a Args) ([]byte, error) {
	if err := ValidateArgs(a); err != nil {
		return nil, err
	}
	spliced, err := splice(ft, filename, a)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, len(profileHeader)+len(shellNoOp)+len(spliced))
	data = append(data, profileHeader...)
	data = append(data, shellNoOp...)
	data = append(data, spliced...)

	for i := 0; ; i++ {
		lenBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(lenBytes, uint32(len(data)))
		if !hostile.FirstHostile(lenBytes[3]) {
			break
		}
		if i >= maxPadIterations {
			return nil, pdverr.New(pdverr.BadImage, "could not clear hostile iCCP length byte within pad budget")
		}
		data = append(data, []byte(strings.Repeat(".", 8))...)
	}

	c := &chunk.Chunk{Type: chunk.TypeiCCP, Data: data}
	out := c.Bytes()

	if len(out) > maxChunkSize {
		return nil, pdverr.Newf(pdverr.ScriptOversize, "script chunk is %d bytes, exceeds %d byte limit", len(out), maxChunkSize)
	}
	return out, nil
}
