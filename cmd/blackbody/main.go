// Command blackbody prints the approximate visible color of a black body
// for each temperature given in kelvin.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/woozymasta/rgba"
)

// Output formats.
const (
	formatHex   = "hex"
	formatJSON  = "json"
	formatFloat = "float"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("blackbody", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", formatHex, "output format: hex, json or float")
	check := fs.Bool("check", false, "report temperature issues before printing")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: blackbody [flags] KELVIN...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := logrus.InfoLevel
	if *verbose {
		level = logrus.DebugLevel
	}
	log := namedLogger("blackbody", stderr, level)

	switch *format {
	case formatHex, formatJSON, formatFloat:
	default:
		log.Errorf("unknown format %q", *format)
		return 2
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	code := 0
	for _, arg := range fs.Args() {
		kelvin, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(arg), "K"), 64)
		if err != nil {
			log.WithField("arg", arg).Error("invalid temperature")
			code = 1
			continue
		}

		if *check {
			issues := rgba.CheckBlackBody(kelvin, nil)
			for _, is := range issues {
				entry := log.WithFields(logrus.Fields{"code": is.Code, "value": is.Path})
				if is.Level == rgba.IssueError {
					entry.Error(is.Message)
				} else {
					entry.Warn(is.Message)
				}
			}
			if rgba.HasErrors(issues) {
				code = 1
				continue
			}
		}

		bands := rgba.BlackBodyBands(kelvin)
		log.WithFields(logrus.Fields{
			"total": bands.Total,
			"red":   bands.Red,
			"green": bands.Green,
			"blue":  bands.Blue,
		}).Debugf("bands for %gK", kelvin)

		line, err := render(arg, bands.Color(), *format)
		if err != nil {
			log.WithError(err).Error("render failed")
			code = 1
			continue
		}
		fmt.Fprintln(stdout, line)
	}

	return code
}

// render formats a single output line.
func render(arg string, c rgba.Color, format string) (string, error) {
	switch format {
	case formatJSON:
		b, err := json.Marshal(c)
		if err != nil {
			return "", err
		}
		return string(b), nil
	case formatFloat:
		f := c.Float32Array()
		return fmt.Sprintf("%s %g %g %g %g", arg, f[0], f[1], f[2], f[3]), nil
	default:
		return arg + " " + c.String(), nil
	}
}
