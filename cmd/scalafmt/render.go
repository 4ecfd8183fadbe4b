package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xavierguihot/scalafmt/internal/driver"
	"github.com/xavierguihot/scalafmt/internal/style"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <path> [path...]",
	Short: "Render formatted sources from plan files",
	Long:  `Render decodes serialized formatting plans and writes the formatted Scala sources they describe`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Bool("check", false, "check if targets are up to date instead of writing")
	renderCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	renderCmd.Flags().String("format", "text", "output format (text|json)")
	renderCmd.Flags().String("config", "", "path to a .scalafmt.toml configuration file")
	renderCmd.Flags().Int("jobs", 0, "maximum parallel renders (0 = number of CPUs)")
	renderCmd.Flags().Bool("ui", false, "show interactive progress (requires a terminal)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("render: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("render: --stdout is only supported with text output")
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	cfg := style.Default()
	if configPath != "" {
		cfg, err = style.Load(configPath)
		if err != nil {
			return err
		}
	}

	opts := driver.Options{
		Check:  check,
		Stdout: writeToStdout,
		Jobs:   jobs,
		Style:  cfg,
	}

	var results []driver.Result
	if withUI && !writeToStdout && isTerminal(os.Stdout) {
		results, err = runRenderWithUI(cmd.Context(), "rendering", args, opts)
	} else {
		results, err = driver.RenderPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("render: failed to render some files")
			}
			return nil
		}
		renderText(results, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderJSON(results, check); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		return fmt.Errorf("render: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("render: failed to render some files")
	}
	if check && hasChanges {
		return fmt.Errorf("render: formatting changes required")
	}
	return nil
}

func renderStdout(results []driver.Result, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "render: %s: %v\n", res.PlanPath, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderText(results []driver.Result, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "render: %s: %v\n", res.PlanPath, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "rendered %s\n", res.Path)
		}
	}
}

func renderJSON(results []driver.Result, check bool) error {
	type jsonResult struct {
		Plan     string `json:"plan"`
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Plan: res.PlanPath, Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
