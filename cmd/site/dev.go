package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

type procConfig struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

// wasmBuild compiles the page-behaviour bundle into the site directory.
func wasmBuild(siteDir string) procConfig {
	return procConfig{
		Name: "build-site-wasm",
		Args: []string{"go", "build", "-o", filepath.Join(siteDir, "site.wasm"), "./cmd/site-wasm"},
		Env:  []string{"GOOS=js", "GOARCH=wasm"},
	}
}

func runProc(ctx context.Context, cfg procConfig) error {
	if len(cfg.Args) == 0 {
		return fmt.Errorf("%s: no command", cfg.Name)
	}
	cmd := exec.CommandContext(ctx, cfg.Args[0], cfg.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if cfg.Dir != "" {
		cmd.Dir = cfg.Dir
	}
	if len(cfg.Env) > 0 {
		cmd.Env = append(append([]string{}, os.Environ()...), cfg.Env...)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", cfg.Name, err)
	}
	return nil
}

// wasmExecCandidates lists where toolchains ship the JS loader, newest first.
func wasmExecCandidates(goroot string) []string {
	return []string{
		filepath.Join(goroot, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(goroot, "misc", "wasm", "wasm_exec.js"),
	}
}

// copyWasmExec puts the toolchain's wasm_exec.js next to the bundle.
func copyWasmExec(ctx context.Context, siteDir string) error {
	out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("locating GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))
	for _, src := range wasmExecCandidates(goroot) {
		data, err := os.ReadFile(src)
		if err != nil {
			continue
		}
		return os.WriteFile(filepath.Join(siteDir, "wasm_exec.js"), data, 0o644)
	}
	return fmt.Errorf("wasm_exec.js not found under %s", goroot)
}

func newDevCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dev",
		Short: "Build the wasm bundle and its loader into the site directory, then serve it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := runProc(ctx, wasmBuild(cfg.Dir)); err != nil {
				return err
			}
			if err := copyWasmExec(ctx, cfg.Dir); err != nil {
				return err
			}
			return serve(ctx, cfg, cmd)
		},
	}
}
