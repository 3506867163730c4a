package scripts

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/CleasbyCode/pdvzip-go/internal/archivewrap"
	"github.com/CleasbyCode/pdvzip-go/internal/hostile"
	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
)

func TestBuildVideoAudioSplicesFilename(t *testing.T) {
	out, err := Build(archivewrap.VideoAudio, "movie.mp4", Args{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.Contains(out, []byte("movie.mp4")) {
		t.Fatalf("expected spliced filename in output")
	}
	if !bytes.Contains(out, []byte("iCCP")) {
		t.Fatalf("expected iCCP chunk type in output")
	}
}

func TestBuildPythonSplicesFilenameAndArgs(t *testing.T) {
	out, err := Build(archivewrap.Python, "run.py", Args{Linux: "--flag", Windows: "/flag"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.Contains(out, []byte("run.py")) {
		t.Fatalf("expected spliced filename")
	}
	if !bytes.Contains(out, []byte("--flag")) {
		t.Fatalf("expected spliced linux args")
	}
	if !bytes.Contains(out, []byte("/flag")) {
		t.Fatalf("expected spliced windows args")
	}
}

func TestBuildJarHasNoFilenameSplice(t *testing.T) {
	out, err := Build(archivewrap.JAR, "ignored.txt", Args{Linux: "-x"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if bytes.Contains(out, []byte("ignored.txt")) {
		t.Fatalf("jar template must not splice a filename")
	}
	if !bytes.Contains(out, []byte("-x")) {
		t.Fatalf("expected spliced linux args")
	}
}

func TestValidateArgsRejectsUnbalancedQuotes(t *testing.T) {
	err := ValidateArgs(Args{Linux: `--name "unterminated`})
	if pdverr.KindOf(err) != pdverr.BadArguments {
		t.Fatalf("expected BadArguments, got %v", err)
	}
}

func TestValidateArgsAllowsEscapedQuote(t *testing.T) {
	if err := ValidateArgs(Args{Linux: `--name \"ok\"`}); err != nil {
		t.Fatalf("expected escaped quotes to be allowed, got %v", err)
	}
}

func TestBuildWindowsExecutableCombinesFilenameAndArgs(t *testing.T) {
	out, err := Build(archivewrap.WindowsExecutable, "setup.exe", Args{Windows: "/silent"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !bytes.Contains(out, []byte("setup.exe /silent")) {
		t.Fatalf("expected combined filename+args splice, got %q", out)
	}
}

// TestBuildNeverLeavesHostileLowLengthByte walks a range of filename lengths
// (which shift the iCCP data length by two bytes at a time, since the
// VIDEO_AUDIO template splices the filename twice) and checks two
// things: the low byte of the finished chunk's big-endian length field is
// never hostile, and the pad loop actually triggers at least once in this
// range, which would be impossible if it were checking the wrong byte.
func TestBuildNeverLeavesHostileLowLengthByte(t *testing.T) {
	prevLen := -1
	padded := false
	for n := 1; n <= 300; n++ {
		name := strings.Repeat("a", n) + ".mp4"
		out, err := Build(archivewrap.VideoAudio, name, Args{})
		if err != nil {
			t.Fatalf("Build(n=%d): %v", n, err)
		}
		chunkLen := binary.BigEndian.Uint32(out[:4])
		var lenBytes [4]byte
		binary.BigEndian.PutUint32(lenBytes[:], chunkLen)
		if hostile.FirstHostile(lenBytes[3]) {
			t.Fatalf("n=%d: chunk data length %d has hostile low byte", n, chunkLen)
		}
		if prevLen >= 0 && int(chunkLen)-prevLen >= 8 {
			padded = true
		}
		prevLen = int(chunkLen)
	}
	if !padded {
		t.Fatal("expected the pad loop to fire at least once across this filename-length range")
	}
}
