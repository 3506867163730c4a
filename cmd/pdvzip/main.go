// Command pdvzip builds a polyglot file that is simultaneously a valid PNG
// image, a valid ZIP/JAR archive, and an executable dual shell/batch script.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/CleasbyCode/pdvzip-go/internal/archivewrap"
	"github.com/CleasbyCode/pdvzip-go/internal/output"
	"github.com/CleasbyCode/pdvzip-go/internal/pdverr"
	"github.com/CleasbyCode/pdvzip-go/internal/pngprep"
	"github.com/CleasbyCode/pdvzip-go/internal/polyglot"
	"github.com/CleasbyCode/pdvzip-go/internal/prompt"
	"github.com/CleasbyCode/pdvzip-go/internal/scripts"
)

const infoText = `
PNG Data Vehicle ZIP/JAR Edition (pdvzip-go).

Embed a ZIP/JAR archive within a PNG image, to create a tweetable and
"executable" PNG-ZIP/JAR polyglot file.

Once the archive has been embedded within a PNG image, it can be shared on
your chosen hosting site or "executed" whenever you want to access the
embedded file(s).

pdvzip will attempt to set executable permissions on newly created polyglot
image files automatically (POSIX only).

From a Linux terminal: ./pzip_image.png (chmod +x pzip_image.png, if needed).
From a Windows terminal: rename the '.png' extension to '.cmd', then run it.

Usage:
  pdvzip <cover_image.png> <archive.{zip,jar}>
  pdvzip --info
`

func main() {
	var (
		showInfo bool
		verbose  bool
	)
	flag.BoolVar(&showInfo, "info", false, "display extended usage information and exit")
	flag.BoolVar(&verbose, "v", false, "print the full error cause chain on failure")
	flag.Parse()

	if showInfo {
		fmt.Println(infoText)
		return
	}

	args := flag.Args()
	if len(args) != 2 {
		fail(pdverr.Newf(pdverr.Usage, "expected exactly 2 arguments, got %d (usage: pdvzip <cover.png> <archive.zip|jar>)", len(args)), verbose)
	}

	if err := run(args[0], args[1]); err != nil {
		fail(err, verbose)
	}
}

func run(coverPath, archivePath string) error {
	coverRaw, err := os.ReadFile(coverPath)
	if err != nil {
		return pdverr.Wrapf(pdverr.Io, err, "reading cover image %q", coverPath)
	}
	archiveRaw, err := os.ReadFile(archivePath)
	if err != nil {
		return pdverr.Wrapf(pdverr.Io, err, "reading archive %q", archivePath)
	}

	isJar := strings.EqualFold(filepath.Ext(archivePath), ".jar")

	log.Printf("preparing cover image %q (%d bytes)", coverPath, len(coverRaw))
	preparedImage, err := pngprep.Prepare(coverRaw)
	if err != nil {
		return err
	}

	log.Printf("wrapping archive %q (%d bytes)", archivePath, len(archiveRaw))
	wrapped, err := archivewrap.Wrap(archiveRaw)
	if err != nil {
		return err
	}

	firstEntry, err := archivewrap.ReadFirstEntry(wrapped)
	if err != nil {
		return err
	}
	fileType, err := archivewrap.SelectFileType(firstEntry, isJar)
	if err != nil {
		return err
	}
	log.Printf("selected first entry %q, file type %d", firstEntry.Filename, fileType)

	var linuxArgs, windowsArgs string
	if acceptsArgs(fileType) {
		linuxArgs, windowsArgs, err = prompt.ArgStrings(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	}

	scriptChunk, err := scripts.Build(fileType, firstEntry.Filename, scripts.Args{
		Linux:   linuxArgs,
		Windows: windowsArgs,
	})
	if err != nil {
		return err
	}

	log.Printf("assembling polyglot")
	finalBuf, err := polyglot.Build(preparedImage, scriptChunk, wrapped)
	if err != nil {
		return err
	}

	kind := output.KindZip
	if isJar {
		kind = output.KindJar
	}
	name, err := output.Write("", kind, finalBuf)
	if err != nil {
		return err
	}

	log.Printf("wrote %s (%d bytes)", name, len(finalBuf))
	return nil
}

// acceptsArgs reports whether the given file type's extraction script has a
// splice slot for Linux and/or Windows arguments, matching
// original_source/src/user_input.cpp, which only prompts for arg-accepting
// types.
func acceptsArgs(ft archivewrap.FileType) bool {
	switch ft {
	case archivewrap.Python, archivewrap.PowerShell, archivewrap.BashShell,
		archivewrap.WindowsExecutable, archivewrap.LinuxExecutable, archivewrap.JAR:
		return true
	default:
		return false
	}
}

func fail(err error, verbose bool) {
	if verbose {
		log.Printf("%+v", err)
	} else {
		log.Print(err)
	}
	os.Exit(pdverr.ExitCode(pdverr.KindOf(err)))
}
