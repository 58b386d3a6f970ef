package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/arch-stack/fileurl"
)

const toolName = "fileurl"

var version = "0.1.0"

func main() {
	encode := flag.Bool("encode", false, "force path to URL conversion")
	decode := flag.Bool("decode", false, "force URL to path conversion")
	platformName := flag.String("platform", "", "path convention: posix, windows or native")
	lossy := flag.Bool("lossy", false, "substitute U+FFFD for unrepresentable text instead of failing")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(toolName, version)
		return
	}

	settings, err := LoadSettings(".")
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	// Flags win over config file and environment.
	if *platformName != "" {
		settings.Platform = *platformName
	}
	if *lossy {
		settings.Lossy = true
	}
	if *verbose {
		settings.Verbose = true
	}

	// Setup logging
	level := slog.LevelInfo
	if settings.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	platform, err := settings.PlatformValue()
	if err != nil {
		slog.Error("invalid settings", "error", err)
		os.Exit(1)
	}
	slog.Debug("converting", "platform", platform.Name(), "lossy", settings.Lossy)

	direction := directionAuto
	switch {
	case *encode && *decode:
		slog.Error("-encode and -decode are mutually exclusive")
		os.Exit(1)
	case *encode:
		direction = directionEncode
	case *decode:
		direction = directionDecode
	}

	failed := false
	emit := func(input string) {
		output, err := convert(platform, settings.Lossy, direction, input)
		if err != nil {
			slog.Error("conversion failed", "input", input, "error", err)
			failed = true
			return
		}
		fmt.Println(output)
	}

	if args := flag.Args(); len(args) > 0 {
		for _, arg := range args {
			emit(arg)
		}
	} else {
		// Filter mode: one input per stdin line.
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				emit(line)
			}
		}
		if err := scanner.Err(); err != nil {
			slog.Error("reading stdin", "error", err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

type direction int

const (
	directionAuto direction = iota
	directionEncode
	directionDecode
)

// convert translates one input. In auto mode anything starting with the
// file: scheme goes URL to path and everything else path to URL.
func convert(platform fileurl.Platform, lossy bool, dir direction, input string) (string, error) {
	toPath := dir == directionDecode ||
		(dir == directionAuto && strings.HasPrefix(input, "file:"))

	if toPath {
		if lossy {
			return platform.LossyFileURLToPath(input), nil
		}
		return platform.FileURLToPath(input)
	}

	if lossy {
		return platform.LossyPathToFileURL(input), nil
	}
	return platform.PathToFileURL(input)
}
