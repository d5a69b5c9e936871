// Package pipeline wires the icon and installer-art generators together.
//
// A Pipeline builds the shape descriptor, composes the master raster,
// exports it to every container format of a project Layout and renders the
// disk image background. Each stage can also be called on its own:
//
//	p := pipeline.New(pipeline.WithRoot("."), pipeline.WithReporter(os.Stdout))
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
package pipeline
