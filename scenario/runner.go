package scenario

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/beesgame/bees/game"
)

// Result is the outcome of running one scenario file against a fresh game.
type Result struct {
	File     string
	Name     string
	Executed int
	Err      error
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// RunFile loads and applies a single file on a new game built with opts,
// then checks its expectations. Load, apply and expectation failures all
// end up in Result.Err, as does a panic from a malformed location code.
func RunFile(filename string, opts ...game.Option) (res Result) {
	res.File = filename
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("%s: %v", filename, r)
		}
	}()
	s, err := Load(filename)
	if err != nil {
		res.Err = err
		return res
	}
	res.Name = s.Name
	g := game.NewGame(opts...)
	res.Executed, res.Err = s.Apply(g)
	if res.Err != nil {
		return res
	}
	res.Err = s.Check(g, res.Executed)
	return res
}

// RunDir runs every .yaml/.yml file in dir. Each file gets its own game, so
// they are run in parallel. Results come back sorted by file name. The
// returned error is only for problems reading the directory or a
// cancelled context.
func RunDir(ctx context.Context, dir string, opts ...game.Option) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = RunFile(f, opts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
