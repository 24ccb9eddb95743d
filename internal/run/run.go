// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package run implements the reachguard analysis pass.
package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"log/slog"
	"path"
	"path/filepath"
	"runtime/trace"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/reachguard/internal/astutil"
	"fillmore-labs.com/reachguard/internal/config"
	"fillmore-labs.com/reachguard/internal/gosyntax"
	"fillmore-labs.com/reachguard/internal/report"
	"fillmore-labs.com/reachguard/internal/tracker"
	"fillmore-labs.com/reachguard/reachability"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the reachguard analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("reachguard: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ReachGuard")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	settings, err := o.settings(p)
	if err != nil {
		return nil, fmt.Errorf("reachguard: %w", err)
	}

	// Stage 1: Collect the function bodies to analyze
	bodies := collect(p, in, settings)

	// Stage 2: Convert and analyze the bodies concurrently
	if err := o.analyze(ctx, p, settings, bodies); err != nil {
		return nil, fmt.Errorf("reachguard: %w", err)
	}

	// Stage 3: Report in source order
	for _, b := range bodies {
		report.Unreachable(p, b.Body)
	}

	return nil, nil
}

// settings applies the configuration files of the package directory.
func (o *Options) settings(p *analysis.Pass) (config.Settings, error) {
	settings := o.Settings
	if !settings.Behavior.Enabled(config.ReadConfigFiles) || len(p.Files) == 0 {
		return settings, nil
	}

	filename := p.Fset.Position(p.Files[0].Package).Filename
	if filename == "" {
		return settings, nil
	}

	return config.Load(filepath.Dir(filename), settings)
}

type body struct {
	report.Body
	name string
}

// collect walks all files and returns the function bodies to analyze, in source order.
func collect(p *analysis.Pass, in *inspector.Inspector, settings config.Settings) []*body {
	var (
		bodies      []*body
		currentFile astutil.CurrentFile // Remember the current file over all functions declared in it
	)

	includeGenerated := settings.Behavior.Enabled(config.IncludeGenerated)

	nodeTypes := []ast.Node{
		(*ast.File)(nil),
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
	}

	in.Root().Inspect(nodeTypes, func(c inspector.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.File:
			currentFile = astutil.NewCurrentFile(p.Fset, node)
			if !currentFile.Valid() {
				astutil.InternalError(p, node, "File %s without valid info", node.Name.Name)

				return false
			}

			// Skip generated files and files with nolint comment
			return (includeGenerated || !currentFile.Generated()) && !currentFile.NoLintFile()

		case *ast.FuncDecl:
			// Skip functions with nolint comment
			if astutil.NoLintDoc(node.Doc) {
				return false
			}

			funcName := declName(p.TypesInfo, node)
			if excluded(settings.ExcludeFunctions, funcName) {
				return false
			}

			if node.Body != nil {
				bodies = append(bodies, &body{Body: report.Body{File: currentFile, Block: node.Body}, name: funcName})
			}

			return true

		case *ast.FuncLit:
			funcName := "func"
			for d := range c.Enclosing((*ast.FuncDecl)(nil)) {
				funcName = declName(p.TypesInfo, d.Node().(*ast.FuncDecl)) + ".func"
				break
			}

			bodies = append(bodies, &body{Body: report.Body{File: currentFile, Block: node.Body}, name: funcName})

			return true

		default:
			astutil.InternalError(p, node, "Unexpected node type: %T", node)

			return false
		}
	})

	return bodies
}

// declName returns the name of a function declaration, methods are named "Type.Method".
func declName(info *types.Info, decl *ast.FuncDecl) string {
	fun, ok := info.Defs[decl.Name].(*types.Func)
	if !ok {
		return decl.Name.Name
	}

	name := tracker.FuncNameOf(fun)
	if name.Receiver == "" {
		return name.Name
	}

	return name.Receiver + "." + name.Name
}

// excluded reports whether name matches one of the patterns.
func excluded(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}

	return false
}

// analyze fills in the unreachable statements of all bodies.
func (o *Options) analyze(ctx context.Context, p *analysis.Pass, settings config.Settings, bodies []*body) error {
	defer trace.StartRegion(ctx, "Analyze").End()

	conv := gosyntax.New(p.TypesInfo)
	an := reachability.New(
		reachability.WithConstants(gosyntax.NewConstants(p.TypesInfo)),
		reachability.WithExemptConstantFor(settings.Behavior.Enabled(config.ExemptConstantFor)),
	)

	logger := o.logger()

	var g errgroup.Group
	g.SetLimit(o.concurrency())

	for _, b := range bodies {
		g.Go(func() error {
			tree, err := conv.Body(b.Block)
			switch {
			case errors.Is(err, gosyntax.ErrGoto):
				logger.LogAttrs(ctx, slog.LevelDebug, "Skipping body with goto",
					slog.String("func", b.name),
					slog.String("pos", p.Fset.Position(b.Block.Pos()).String()))

				return nil

			case err != nil:
				return fmt.Errorf("%s: %w", b.name, err)
			}

			b.Unreachable = an.Analyze(ctx, tree, nil).Unreachable()

			return nil
		})
	}

	return g.Wait()
}
