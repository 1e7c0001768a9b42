package common

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ssgclient/internal/archive"
	"github.com/jonesrussell/ssgclient/internal/snapshot"
	"github.com/jonesrussell/ssgclient/internal/ssg"
)

// OutputOptions are the flags shared by every fetch command.
type OutputOptions struct {
	// JSON prints the raw response body instead of a rendered table.
	JSON bool
	// NoSave skips archiving the response to the data directory.
	NoSave bool
	// Snapshot records the response in the snapshot store as well.
	Snapshot bool
}

// RegisterOutputFlags adds the shared output flags to a command.
func RegisterOutputFlags(cmd *cobra.Command, opts *OutputOptions) {
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the raw JSON response")
	cmd.Flags().BoolVar(&opts.NoSave, "no-save", false, "do not archive the response to the data directory")
	cmd.Flags().BoolVar(&opts.Snapshot, "snapshot", false, "record the response in the snapshot store")
}

// EmitResponse archives the response (unless --no-save), optionally records
// it in the snapshot store, and prints the raw payload when --json was
// requested. Table rendering stays with the caller.
func EmitResponse(ctx context.Context, deps CommandDeps, opts OutputOptions, group, name string, resp *ssg.Response) error {
	if !opts.NoSave {
		archiver, err := archive.NewArchiver(deps.Config.GetArchiveConfig(), deps.Logger)
		if err != nil {
			return fmt.Errorf("create archiver: %w", err)
		}

		record, saveErr := archiver.Save(ctx, group, name, resp)
		if saveErr != nil {
			return fmt.Errorf("archive response: %w", saveErr)
		}
		fmt.Fprintf(os.Stderr, "Saved to: %s\n", record.Path)
	}

	if opts.Snapshot {
		if err := recordSnapshot(ctx, deps, name, resp); err != nil {
			return err
		}
	}

	if opts.JSON {
		os.Stdout.Write(resp.Raw)
		fmt.Println()
	}

	return nil
}

// recordSnapshot stores the response as a single-document run.
func recordSnapshot(ctx context.Context, deps CommandDeps, name string, resp *ssg.Response) error {
	store, err := snapshot.Open(deps.Config.GetSnapshotConfig().Path)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer store.Close()

	run, err := store.BeginRun(ctx, resp.Endpoint)
	if err != nil {
		return fmt.Errorf("begin snapshot run: %w", err)
	}
	saveErr := store.SaveDocument(ctx, run.ID, name, resp)
	if err := store.CompleteRun(ctx, run.ID, saveErr); err != nil {
		return fmt.Errorf("complete snapshot run: %w", err)
	}
	if saveErr != nil {
		return fmt.Errorf("record snapshot: %w", saveErr)
	}
	return nil
}

// NewTable returns a table writer configured with the plain, borderless
// style used across the CLI.
func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	noBorderStyle := table.Style{
		Box: table.BoxStyle{
			PaddingLeft:  "",
			PaddingRight: "  ",
		},
		Options: table.Options{
			DrawBorder:      false,
			SeparateColumns: false,
			SeparateHeader:  true,
			SeparateRows:    false,
		},
	}
	t.SetStyle(noBorderStyle)
	return t
}
