// grafton augments GraphQL SDL documents with a relationship mutation API.
//
// Usage:
//
//	grafton [flags] schema.graphql...
//
// Each input schema is augmented and written next to -out as
// <name>.augmented.graphql. With -gen-go, a Go metadata file describing the
// generated mutation fields is written as well. With -watch, grafton keeps
// running and re-augments whenever an input file changes.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/grafton/augment"
	"github.com/syssam/grafton/compiler"
	"github.com/syssam/grafton/compiler/gen"
)

func main() {
	var (
		configPath = flag.String("config", "grafton.yml", "path to the augmentation config file")
		outDir     = flag.String("out", ".", "directory for augmented schema files")
		genGo      = flag.String("gen-go", "", "path of the generated Go metadata file")
		genPkg     = flag.String("gen-pkg", "graftonmeta", "package name for the generated Go file")
		watch      = flag.Bool("watch", false, "watch schema files and re-augment on change")
	)
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("grafton: no schema files given")
	}
	if *genGo != "" && len(files) > 1 {
		log.Fatal("grafton: -gen-go requires a single schema file")
	}

	cfg, err := compiler.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	run := func() error {
		g := new(errgroup.Group)
		for _, file := range files {
			g.Go(func() error {
				return augmentFile(file, *outDir, *genGo, *genPkg, cfg)
			})
		}
		return g.Wait()
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
	if *watch {
		if err := watchFiles(files, run); err != nil {
			log.Fatal(err)
		}
	}
}

// augmentFile augments one schema file and writes its outputs.
func augmentFile(path, outDir, genGo, genPkg string, cfg augment.Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	res, err := compiler.AugmentSource(filepath.Base(path), string(src), cfg)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(outDir, name+".augmented.graphql")
	if err := os.WriteFile(out, []byte(res.SDL()), 0o644); err != nil {
		return err
	}
	log.Printf("grafton: wrote %s", out)

	if genGo != "" {
		g := gen.NewGenerator(genPkg, gen.Bindings(res.MutationFields))
		if err := g.Write(genGo); err != nil {
			return err
		}
		log.Printf("grafton: wrote %s", genGo)
	}
	return nil
}

// watchFiles blocks, re-running the augmentation whenever a watched schema
// file is written. Augmentation failures are logged, not fatal, so a
// half-saved schema does not kill the watch loop.
func watchFiles(files []string, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	for _, f := range files {
		// Watch the directory: editors often replace the file on save,
		// which drops a direct file watch.
		if err := w.Add(filepath.Dir(f)); err != nil {
			return err
		}
	}
	watched := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
	}

	log.Printf("grafton: watching %d schema file(s)", len(files))
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				log.Printf("grafton: %s changed, re-augmenting", ev.Name)
				if err := run(); err != nil {
					log.Printf("grafton: %v", err)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("grafton: watch error: %v", err)
		}
	}
}
