package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/walt/internal/imaging"
	"github.com/ironsheep/walt/internal/markup"
	"github.com/ironsheep/walt/internal/walt"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = `walt - convert a series of images to a CSS animation

Usage: walt FILENAMES... [options]

Options:
  -h, --help               Show this screen.
  --version                Show version.
  --out-image <filename>   Filename for composite image. [default: walt.png]
  --out-html <filename>    Filename for HTML/CSS markup. [default: walt.html]
  --out-gif <filename>     Also write an animated GIF preview.
  --trim                   Trim the edges of the images.
  --trim-color <color>     Color to trim with (#RRGGBB, #RRGGBBAA, r,g,b[,a] or a name).
                           [default: the top-left pixel of each image]
  --class <name>           CSS class-name prefix. [default: walt]
  --duration <duration>    Animation duration in seconds ("1.5") or with a unit ("1500ms").
                           [default: frame count / 24 seconds]
  --verbose                Log progress to stderr.

Environment variables:
  WALT_LOG_LEVEL=debug     Same as --verbose
`

// errUsage marks command-line errors, which exit with status 2.
var errUsage = errors.New("usage error")

// command is the parsed command line.
type command struct {
	opts    walt.Options
	help    bool
	version bool
}

func main() {
	// Configure logging to stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime)
	log.SetPrefix("walt: ")

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "walt: %v\n\n%s", err, usage)
		return 2
	}

	switch {
	case cmd.help:
		fmt.Fprint(stdout, usage)
		return 0
	case cmd.version:
		fmt.Fprintf(stdout, "walt %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return 0
	}

	if os.Getenv("WALT_LOG_LEVEL") == "debug" {
		cmd.opts.Verbose = true
	}
	if cmd.opts.Verbose {
		cmd.opts.Logf = log.Printf
		log.Printf("walt %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if _, err := walt.Run(cmd.opts); err != nil {
		fmt.Fprintf(stderr, "walt: %v\n", err)
		return 1
	}
	return 0
}

// parseArgs parses the command line. Options may appear before, between or
// after the file names; everything after "--" is a file name.
func parseArgs(args []string) (*command, error) {
	cmd := &command{opts: walt.DefaultOptions()}

	fs := flag.NewFlagSet("walt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cmd.opts.OutImage, "out-image", walt.DefaultOutImage, "")
	fs.StringVar(&cmd.opts.OutMarkup, "out-html", walt.DefaultOutMarkup, "")
	fs.StringVar(&cmd.opts.OutPreview, "out-gif", "", "")
	fs.BoolVar(&cmd.opts.Trim, "trim", false, "")
	fs.StringVar(&cmd.opts.ClassName, "class", walt.DefaultClassName, "")
	fs.BoolVar(&cmd.opts.Verbose, "verbose", false, "")
	fs.BoolVar(&cmd.version, "version", false, "")
	trimColor := fs.String("trim-color", "", "")
	duration := fs.String("duration", "", "")

	for len(args) > 0 {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				cmd.help = true
				return cmd, nil
			}
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			cmd.opts.Inputs = append(cmd.opts.Inputs, rest...)
			break
		}
		cmd.opts.Inputs = append(cmd.opts.Inputs, rest[0])
		args = rest[1:]
	}

	if cmd.help || cmd.version {
		return cmd, nil
	}

	if len(cmd.opts.Inputs) == 0 {
		return nil, fmt.Errorf("%w: no input files", errUsage)
	}
	if *trimColor != "" {
		c, err := imaging.ParseColor(*trimColor)
		if err != nil {
			return nil, fmt.Errorf("%w: --trim-color: %v", errUsage, err)
		}
		cmd.opts.TrimColor = c
	}
	if *duration != "" {
		d, err := parseDuration(*duration)
		if err != nil {
			return nil, fmt.Errorf("%w: --duration: %v", errUsage, err)
		}
		cmd.opts.Duration = d
	}
	if err := markup.ValidateClassName(cmd.opts.ClassName); err != nil {
		return nil, fmt.Errorf("%w: --class: %v", errUsage, err)
	}

	return cmd, nil
}

// parseDuration accepts a number of seconds or a Go duration string. The
// result must be positive.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	var d time.Duration
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		d = time.Duration(secs * float64(time.Second))
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration %q must be positive", s)
	}
	return d, nil
}
