package cmd

import (
	"fmt"
	"os"
	"strings"

	"dkv2_import/internal/adapters/opener"
	"dkv2_import/internal/config"
	"dkv2_import/internal/config/connections/s3"
	"dkv2_import/internal/ports"
	"dkv2_import/internal/repository/database"
	"dkv2_import/internal/services/importer"
	"dkv2_import/internal/utils"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	basePath   string
	outputPath string
	runID      string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the template database and import export rows into the copy",
	Long: `The import command copies the template database to the output path,
then processes the export row by row. Rows that cannot be parsed or
inserted are reported at the end of the run; they never abort the batch.

The input may be a local path, an s3://bucket/key URL or an http(s) URL.
Files ending in .xlsx are read from the first sheet; everything else is
treated as CSV.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input CSV or XLSX export")
	importCmd.Flags().StringVarP(&basePath, "base", "b", "", "template DKV2 database (.dkdb)")
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output database path")
	importCmd.Flags().StringVar(&runID, "run-id", "", "override the generated import run id")

	importCmd.MarkFlagRequired("input")
	importCmd.MarkFlagRequired("base")
	importCmd.MarkFlagRequired("output")
}

func runImport(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.Init()

	if runID == "" {
		runID = uuid.NewString()
	}

	if err := utils.CopyFile(basePath, outputPath); err != nil {
		return fmt.Errorf("snapshot template database: %w", err)
	}

	db, err := database.Open(outputPath)
	if err != nil {
		return err
	}
	defer db.Close()

	op, err := buildOpener(cfg)
	if err != nil {
		return err
	}

	svc := importer.NewService(op, database.NewStore(db), cfg)
	rep, err := svc.Import(ctx, importer.Request{FilePath: inputPath, RunID: runID})
	if err != nil {
		return err
	}

	rep.Print(os.Stdout)
	fmt.Printf("Written: %s\n", outputPath)
	return nil
}

// buildOpener wires the input sources. The S3 client is only built when
// the input actually is an s3:// URL, so local runs need no credentials.
func buildOpener(cfg *config.Config) (ports.FileOpener, error) {
	var s3Op *opener.S3Opener
	if strings.HasPrefix(inputPath, "s3://") {
		conn, err := s3.NewConnection(cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("s3 connect: %w", err)
		}
		s3Op = opener.NewS3Opener(conn.Client)
	}
	return opener.NewCompoundOpener(opener.NewLocalOpener(), opener.NewHTTPOpener(nil), s3Op), nil
}
