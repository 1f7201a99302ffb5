package cmd

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/TFMV/flatjson/internal/jsonprinter"
	"github.com/TFMV/flatjson/schema/flatjsonfb"
)

var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Print a FlatBuffers-encoded file as JSON",
	Long: `Print reads a single FlatBuffers wire buffer and streams its JSON
rendering to stdout (or to --zstd-out, zstd-compressed).

Examples:
  flatjson print snapshot.bin
  flatjson print manifest.bin --indent 2 --fid MNFS
  flatjson print manifest.bin --zstd-out manifest.json.zst`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		configPath, _ := cmd.Flags().GetString("config")
		fid, _ := cmd.Flags().GetString("fid")
		zstdOut, _ := cmd.Flags().GetString("zstd-out")

		opts, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		opts = applyFlagOverrides(cmd.Flags(), opts)

		buf, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		pf := printerFor(fid)
		if pf == nil {
			return fmt.Errorf("unrecognized --fid %q: must be SNAP or MNFS", fid)
		}

		if zstdOut != "" {
			out, err := os.Create(zstdOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", zstdOut, err)
			}
			defer out.Close()
			ctx, closer, err := jsonprinter.NewCompressedStreamSink(out, opts, zstd.WithEncoderLevel(zstd.SpeedDefault))
			if err != nil {
				return fmt.Errorf("creating zstd sink: %w", err)
			}
			defer closer.Close()
			_, err = jsonprinter.TableAsRoot(ctx, buf, fid, pf)
			return err
		}

		ctx := jsonprinter.NewStreamContext(os.Stdout, opts)
		_, err = jsonprinter.TableAsRoot(ctx, buf, fid, pf)
		return err
	},
}

// printerFor maps a --fid value to the schema TableFunc that understands
// it. An empty fid skips the header check and is printed with the richer
// of the two schemas; any other unrecognized fid yields nil.
func printerFor(fid string) jsonprinter.TableFunc {
	switch fid {
	case flatjsonfb.SnapshotFileIdentifier:
		return flatjsonfb.SnapshotPrint
	case flatjsonfb.ManifestFileIdentifier, "":
		return flatjsonfb.ManifestPrint
	default:
		return nil
	}
}

func init() {
	RootCmd.AddCommand(printCmd)

	printCmd.Flags().Int("indent", 0, "Spaces per nesting level (0 for compact output)")
	printCmd.Flags().Bool("unquote", false, "Emit unquoted field names and enum symbols (not valid JSON)")
	printCmd.Flags().Bool("noenum", false, "Print enum fields as raw numbers")
	printCmd.Flags().Bool("skip-default", false, "Omit scalar/enum fields equal to their schema default")
	printCmd.Flags().Bool("force-default", false, "Print a scalar/enum field's default even when absent")
	printCmd.Flags().Bool("cache-nested", false, "Deduplicate identical nested-root renderings")
	printCmd.Flags().String("fid", flatjsonfb.ManifestFileIdentifier, "Expected file identifier (SNAP or MNFS)")
	printCmd.Flags().String("zstd-out", "", "Write zstd-compressed JSON to this path instead of stdout")
	printCmd.Flags().String("config", "", "Path to a flatjson config file (default ~/.flatjson.yaml)")
}
