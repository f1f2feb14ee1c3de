package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/securezone/export"
	"github.com/osuushi/securezone/geometry"
	"github.com/osuushi/securezone/internal/config"
	"github.com/osuushi/securezone/internal/layout"
	"github.com/osuushi/securezone/internal/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Place sensors from a layout and report the secure zone.
//
// The input is an event script ("add X Y", "remove X Y [RADIUS]", "clear", or
// bare "X Y" lines), an SVG drawing whose circles and polygon vertices are
// sensors, or an earlier JSON export. With no input, an event script is read
// from stdin.
func main() {
	log.SetFlags(0)
	log.SetPrefix("securezone: ")

	app := kingpin.New("securezone", "Find the area covered by crossing sensor beams.")
	configPath := app.Flag("config", "YAML settings file.").Short('c').ExistingFile()
	noColor := app.Flag("no-color", "Disable colored output.").Bool()

	runCmd := app.Command("run", "Place sensors from a layout and report the secure zone.").Default()
	input := runCmd.Arg("input", "Event script, .svg or .json export. Use - for stdin.").Default("-").String()
	exportPath := runCmd.Flag("export", "Write the JSON export here.").Short('o').String()
	pngPath := runCmd.Flag("png", "Render the field to this PNG file.").String()
	showImage := runCmd.Flag("imgcat", "Show the rendered PNG in the terminal.").Bool()

	validateCmd := app.Command("validate", "Check an export file against the export schema.")
	validatePath := validateCmd.Arg("file", "Export file.").Required().ExistingFile()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	switch command {
	case runCmd.FullCommand():
		err = run(cfg, runArgs{
			input:      *input,
			exportPath: *exportPath,
			pngPath:    *pngPath,
			showImage:  *showImage,
		}, os.Stdin, os.Stdout, au)
	case validateCmd.FullCommand():
		err = validate(*validatePath, os.Stdout, au)
	}
	if err != nil {
		log.Fatal(err)
	}
}

type runArgs struct {
	input      string
	exportPath string
	pngPath    string
	showImage  bool
}

func run(cfg *config.Config, args runArgs, stdin io.Reader, out io.Writer, au aurora.Aurora) error {
	events, err := layout.Load(args.input, stdin)
	if err != nil {
		return err
	}

	field := geometry.NewField()
	result := layout.Apply(field, events, layout.OptionsFromConfig(cfg))
	for _, missed := range result.Missed {
		radius := missed.Radius
		if radius == 0 {
			radius = cfg.RemoveRadius
		}
		fmt.Fprintln(out, au.Yellow(fmt.Sprintf("No sensor within %g of (%g, %g)", radius, missed.X, missed.Y)))
	}
	for _, removed := range result.Removed {
		name := au.Cyan(removed).String()
		if cfg.Render.Labels == config.LabelsNames {
			name += " " + removed.DbgName()
		}
		fmt.Fprintln(out, "Removed sensor "+name)
	}

	snapshot := field.Snapshot()
	printStatistics(out, au, snapshot)

	if args.exportPath != "" {
		if err := writeExport(args.exportPath, export.FromSnapshot(snapshot), cfg.Export.Validate); err != nil {
			return err
		}
		fmt.Fprintln(out, au.Green("Exported "+args.exportPath))
	}

	if args.pngPath != "" {
		if err := render.SavePNG(snapshot, render.OptionsFromConfig(cfg), args.pngPath); err != nil {
			return err
		}
		fmt.Fprintln(out, au.Green("Rendered "+args.pngPath))
		if args.showImage {
			if err := render.Show(args.pngPath, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func printStatistics(out io.Writer, au aurora.Aurora, snapshot *geometry.Snapshot) {
	fmt.Fprintln(out, au.Sprintf("Sensors: %d  Beams: %d  Intersections: %d",
		au.Bold(len(snapshot.Sensors)), au.Bold(snapshot.BeamCount), au.Bold(len(snapshot.Intersections))))
	if len(snapshot.SecurePolygon) == 0 {
		fmt.Fprintln(out, au.Red("No secure zone"))
		return
	}
	fmt.Fprintln(out, au.Sprintf("Secure zone: %d vertices, area %s",
		au.Bold(len(snapshot.SecurePolygon)), au.Green(fmt.Sprintf("%.2f", snapshot.SecureArea))))
}

func writeExport(path string, doc *export.Document, check bool) error {
	if check {
		if err := export.ValidateDocument(doc); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := export.Encode(&buf, doc); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0o644), "writing export")
}

func validate(path string, out io.Writer, au aurora.Aurora) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening export")
	}
	defer file.Close()

	doc, err := export.Decode(file)
	if err != nil {
		return errors.Wrap(err, path)
	}
	fmt.Fprintln(out, au.Green(path+" is a valid export"))
	stats := doc.Statistics
	fmt.Fprintf(out, "Sensors: %d  Beams: %d  Intersections: %d  Secure area: %.2f\n",
		stats.SensorCount, stats.BeamCount, stats.IntersectionCount, stats.SecureArea)
	return nil
}
