package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/TFMV/flatjson/internal/jsonprinter"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Print every .bin file under a directory to matching .json files",
	Long: `Batch walks <dir> for *.bin files and writes <name>.json (or
<name>.json.zst with --zstd) alongside each one, reporting progress and
logging per-file failures without aborting the whole run.

Examples:
  flatjson batch ./fixtures
  flatjson batch ./fixtures --zstd --fid MNFS`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		configPath, _ := cmd.Flags().GetString("config")
		fid, _ := cmd.Flags().GetString("fid")
		useZstd, _ := cmd.Flags().GetBool("zstd")

		opts, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		opts = applyFlagOverrides(cmd.Flags(), opts)

		pf := printerFor(fid)
		if pf == nil {
			return fmt.Errorf("unrecognized --fid %q: must be SNAP or MNFS", fid)
		}

		logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
		logger = level.NewFilter(logger, level.AllowInfo())

		var targets []string
		err = godirwalk.Walk(dir, &godirwalk.Options{
			Callback: func(path string, de *godirwalk.Dirent) error {
				if !de.IsDir() && strings.HasSuffix(path, ".bin") {
					targets = append(targets, path)
				}
				return nil
			},
			Unsorted: true,
		})
		if err != nil {
			return fmt.Errorf("walking %s: %w", dir, err)
		}

		bar := progressbar.NewOptions(len(targets),
			progressbar.OptionSetDescription("Printing"),
			progressbar.OptionShowCount(),
		)

		var failures int
		for _, src := range targets {
			if err := printOneFile(src, fid, pf, opts, useZstd); err != nil {
				level.Error(logger).Log("file", src, "err", err)
				failures++
			}
			_ = bar.Add(1)
		}

		if len(targets) > 0 && failures == len(targets) {
			return fmt.Errorf("all %d files failed", failures)
		}
		if failures > 0 {
			level.Info(logger).Log("msg", "batch complete with failures", "failed", failures, "total", len(targets))
		}
		return nil
	},
}

func printOneFile(src, fid string, pf jsonprinter.TableFunc, opts jsonprinter.Options, useZstd bool) error {
	buf, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	dst := strings.TrimSuffix(src, filepath.Ext(src)) + ".json"
	if useZstd {
		dst += ".zst"
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if useZstd {
		ctx, closer, err := jsonprinter.NewCompressedStreamSink(out, opts)
		if err != nil {
			return fmt.Errorf("zstd sink: %w", err)
		}
		defer closer.Close()
		_, err = jsonprinter.TableAsRoot(ctx, buf, fid, pf)
		return err
	}

	ctx := jsonprinter.NewStreamContext(out, opts)
	_, err = jsonprinter.TableAsRoot(ctx, buf, fid, pf)
	return err
}

func init() {
	RootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("indent", 0, "Spaces per nesting level (0 for compact output)")
	batchCmd.Flags().Bool("unquote", false, "Emit unquoted field names and enum symbols (not valid JSON)")
	batchCmd.Flags().Bool("noenum", false, "Print enum fields as raw numbers")
	batchCmd.Flags().Bool("skip-default", false, "Omit scalar/enum fields equal to their schema default")
	batchCmd.Flags().Bool("force-default", false, "Print a scalar/enum field's default even when absent")
	batchCmd.Flags().Bool("cache-nested", false, "Deduplicate identical nested-root renderings")
	batchCmd.Flags().String("fid", "", "Expected file identifier (SNAP or MNFS); empty skips the check")
	batchCmd.Flags().Bool("zstd", false, "Compress each output file with zstd")
	batchCmd.Flags().String("config", "", "Path to a flatjson config file (default ~/.flatjson.yaml)")
}
