// Command dtvoronoi classifies query points against the Voronoi diagram of a
// set of sites, lists the Voronoi edges that have collapsed to a point, and
// renders the dual triangulation.
//
// Sites and queries come from a YAML scene file, or from stdin as "x y" lines:
// sites first, then a blank line, then queries.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/dtvoronoi"
	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/osuushi/dtvoronoi/dbg"
	"github.com/osuushi/dtvoronoi/triangulation"
	"github.com/osuushi/dtvoronoi/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Exit status when the triangulation turns out to be broken
const exitInvariantViolation = 2

var (
	app     = kingpin.New("dtvoronoi", "Voronoi point location and degeneracy detection on a Delaunay triangulation.")
	verbose = app.Flag("verbose", "Log construction details.").Short('v').Bool()
	noColor = app.Flag("no-color", "Disable coloured output.").Bool()

	locateCmd   = app.Command("locate", "Locate each query point in the Voronoi diagram.")
	locateScene = locateCmd.Arg("scene", "YAML scene file. Reads \"x y\" lines from stdin if omitted.").String()

	degenerateCmd   = app.Command("degenerate", "List the dual edges whose Voronoi edge has zero length.")
	degenerateScene = degenerateCmd.Arg("scene", "YAML scene file. Reads \"x y\" lines from stdin if omitted.").String()

	renderCmd    = app.Command("render", "Draw the triangulation, with degenerate edges in red and queries in yellow.")
	renderScene  = renderCmd.Arg("scene", "YAML scene file. Reads \"x y\" lines from stdin if omitted.").String()
	renderOut    = renderCmd.Flag("out", "PNG file to write.").Default("dtvoronoi.png").String()
	renderScale  = renderCmd.Flag("scale", "Pixels per unit.").Default("10").Float64()
	renderImgcat = renderCmd.Flag("imgcat", "Also print the image to the terminal (iTerm only).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	app.FatalIfError(err, "building logger")
	defer logger.Sync()

	defer func() {
		if err := advanced.HandleInvariantPanicRecover(recover()); err != nil {
			logger.Error("triangulation is corrupt", zap.Error(err))
			logger.Sync()
			os.Exit(exitInvariantViolation)
		}
	}()

	au := aurora.NewAurora(!*noColor)
	switch command {
	case locateCmd.FullCommand():
		err = runLocate(os.Stdout, au, logger, *locateScene)
	case degenerateCmd.FullCommand():
		err = runDegenerate(os.Stdout, au, logger, *degenerateScene)
	case renderCmd.FullCommand():
		err = runRender(logger, *renderScene, *renderOut, *renderScale, *renderImgcat)
	}
	app.FatalIfError(err, "%s", command)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	config.DisableStacktrace = true
	return config.Build()
}

func buildDiagram(logger *zap.Logger, path string) (*scene, *voronoi.Diagram, error) {
	s, err := loadScene(path)
	if err != nil {
		return nil, nil, err
	}
	d, err := dtvoronoi.NewDiagram(s.Sites, voronoi.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	for _, v := range d.Graph().FiniteVertices() {
		logger.Debug("site", zap.String("name", dbg.Name(v.Ref)), zap.Stringer("vertex", v))
	}
	return s, d, nil
}

// Describe the dual feature, naming its vertices the way the verbose log does.
func describeDual(result advanced.LocateResult, g advanced.DualGraph) string {
	switch result := result.(type) {
	case advanced.VertexResult:
		return fmt.Sprintf("vertex %s", dbg.Name(result.Vertex.Ref))
	case advanced.EdgeResult:
		a, b := advanced.EdgeVertices(g, result.Edge)
		return fmt.Sprintf("edge %s-%s", dbg.Name(a.Handle()), dbg.Name(b.Handle()))
	case advanced.FaceResult:
		f := result.Face
		return fmt.Sprintf("face %s-%s-%s",
			dbg.Name(f.Vertex(0).Handle()), dbg.Name(f.Vertex(1).Handle()), dbg.Name(f.Vertex(2).Handle()))
	}
	return "?"
}

func runLocate(out io.Writer, au aurora.Aurora, logger *zap.Logger, path string) error {
	s, d, err := buildDiagram(logger, path)
	if err != nil {
		return err
	}
	g := d.Graph()

	valid := au.Green("yes")
	if err := g.Validate(); err != nil {
		logger.Warn("invalid triangulation", zap.Error(err))
		valid = au.Red("no")
	}
	fmt.Fprintf(out, "is Delaunay graph valid? %s\n", valid)
	fmt.Fprintf(out, "Dimension of Delaunay graph: %d\n\n", g.Dimension())

	fmt.Fprintln(out, "Vertices of the Delaunay graph:")
	for _, v := range g.FiniteVertices() {
		fmt.Fprintf(out, "%g %g\n", v.Site.X, v.Site.Y)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Query sites and location feature:")
	for _, q := range s.Queries {
		result, err := dtvoronoi.Locate(g, q)
		if err != nil {
			return err
		}
		feature, err := d.Locate(q)
		if err != nil {
			return err
		}
		logger.Debug("located", zap.Stringer("kind", result.Kind()), zap.String("dual", describeDual(result, g)))
		fmt.Fprintf(out, "(%g, %g)\t --> \t%s\t%s\n", q.X, q.Y, colorKind(au, result.Kind()), feature)
	}
	return nil
}

// Vertex, edge and face colours match the render command.
func colorKind(au aurora.Aurora, kind advanced.LocateKind) aurora.Value {
	switch kind {
	case advanced.LocatedOnVertex:
		return au.Green(kind)
	case advanced.LocatedOnEdge:
		return au.Cyan(kind)
	}
	return au.Yellow(kind)
}

func runDegenerate(out io.Writer, au aurora.Aurora, logger *zap.Logger, path string) error {
	_, d, err := buildDiagram(logger, path)
	if err != nil {
		return err
	}
	g := d.Graph()

	count := 0
	for iter := g.FiniteEdgeIterator(); iter.Next(); {
		e := iter.Edge()
		if !dtvoronoi.IsDegenerate(g, e.Face, e.Index) {
			continue
		}
		count++
		a, b := advanced.EdgeVertices(g, e)
		fmt.Fprintf(out, "%v\t%v - %v\n", au.Red(e), a, b)
	}
	fmt.Fprintf(out, "%d degenerate of %d finite edges\n", count, len(g.FiniteEdges()))
	return nil
}

func runRender(logger *zap.Logger, path, out string, scale float64, cat bool) error {
	s, d, err := buildDiagram(logger, path)
	if err != nil {
		return err
	}

	err = d.Graph().Render(out, triangulation.DrawOptions{
		Scale:     scale,
		Highlight: d.IsEdgeDegenerate,
		Marks:     s.Queries,
	})
	if err != nil {
		return err
	}
	logger.Info("rendered", zap.String("path", out))

	return catImage(out, cat, os.Stdout)
}

func catImage(path string, cat bool, w io.Writer) error {
	if !cat {
		return nil
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing image")
}
