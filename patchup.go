package patchup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/dstats/patchup/rules"
)

// Target is the file patched by Run. The target is fixed: patchup is a
// post-build step for this site's dist output, not a general rewrite tool.
const Target = "dist/index.html"

const successMsg = "HTML updated successfully!"

// Flags for modifying the behavior of Patchup.
type Flags struct {
	DryRun   bool
	RunDir   string
	Quiet    bool
	Style    string
	CacheDir string
	Tool     string
	ToolArgs []string
}

// Flags that may be automatically set in a .patchup.toml file.
type UserFlags struct {
	DryRun   *bool
	RunDir   *string `toml:"directory"`
	Quiet    *bool
	Style    *string
	CacheDir *string `toml:"cache"`
}

// Run patches the target file according to the flags. All output is
// written to 'out'. The path of the target is returned, along with a
// possible error.
func Run(out io.Writer, flags Flags) (string, error) {
	if flags.RunDir != "" {
		err := os.Chdir(flags.RunDir)
		if err != nil {
			return "", err
		}
	}

	doc, err := os.ReadFile(Target)
	if err != nil {
		return Target, err
	}

	var db *rules.Database
	if flags.CacheDir == "." || flags.CacheDir == "" {
		db = rules.NewDatabase(".patchup")
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return Target, err
		}
		dir := flags.CacheDir
		if dir == "$cache" {
			dir = filepath.Join(xdg.CacheHome, "patchup")
		}
		db = rules.NewCacheDatabase(dir, wd)
	}

	rs := rules.Default()

	var w io.Writer = out
	if flags.Quiet {
		w = io.Discard
	}

	if flags.Tool != "" {
		var t rules.Tool
		switch flags.Tool {
		case "list":
			t = &rules.ListTool{W: w}
		case "rules":
			t = &rules.RulesTool{W: w}
		case "status":
			t = &rules.StatusTool{W: w, Db: db}
		default:
			return Target, fmt.Errorf("unknown tool: %s", flags.Tool)
		}

		return Target, t.Run(rs, doc, Target, flags.ToolArgs)
	}

	var printer rules.Printer
	switch flags.Style {
	case "steps":
		printer = &StepPrinter{w: w}
	case "progress":
		printer = &ProgressPrinter{w: w}
	default:
		printer = &BasicPrinter{w: w}
	}

	patched, results := rs.Apply(doc, Target)

	printer.SetSteps(len(results))
	for i, res := range results {
		printer.Print(res.Rule.Name, res.String(), i+1)
		printer.Done(res.Rule.Name)
	}

	if flags.DryRun {
		return Target, nil
	}

	err = os.WriteFile(Target, patched, 0644)
	if err != nil {
		return Target, err
	}

	db.Record(Target, patched)
	err = db.Save()
	if err != nil {
		return Target, err
	}

	fmt.Fprintln(out, successMsg)
	return Target, nil
}
