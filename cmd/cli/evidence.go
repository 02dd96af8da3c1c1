package main

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redflagged/redflagged/pkg/targz"
)

func makeEvidenceCommand() *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "evidence <archive>",
		Short: "Unpack an evidence archive of a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return unpackEvidence(args[0], dest)
		},
	}
	cmd.Flags().StringVar(&dest, "dest", ".", "Destination directory")

	return cmd
}

type dirVisitor struct {
	dest  string
	files int
}

func (v *dirVisitor) VisitDirectory(info fs.FileInfo) error {
	return os.MkdirAll(filepath.Join(v.dest, filepath.Base(info.Name())), 0750)
}

func (v *dirVisitor) VisitFile(info fs.FileInfo) (io.WriteCloser, error) {
	v.files++
	return os.Create(filepath.Join(v.dest, filepath.Base(info.Name())))
}

func unpackEvidence(archive, dest string) error {
	input, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer input.Close()

	if err := os.MkdirAll(dest, 0750); err != nil {
		return err
	}

	visitor := &dirVisitor{dest: dest}
	if err := targz.Extract(input, visitor); err != nil {
		return err
	}

	log.Info("Unpacked evidence", zap.String("archive", archive), zap.Int("num_files", visitor.files))
	return nil
}
