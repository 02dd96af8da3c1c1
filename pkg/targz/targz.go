package targz

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"time"
)

type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
	Body    io.Reader
}

// Pack writes entries as a flat gzipped tarball.
func Pack(output io.Writer, entries []Entry) error {
	gzipWriter := gzip.NewWriter(output)
	tarWriter := tar.NewWriter(gzipWriter)

	for _, entry := range entries {
		modTime := entry.ModTime
		if modTime.IsZero() {
			modTime = time.Now()
		}
		err := tarWriter.WriteHeader(&tar.Header{
			Typeflag: tar.TypeReg,
			Name:     entry.Name,
			Size:     entry.Size,
			Mode:     0644,
			ModTime:  modTime,
		})
		if err != nil {
			return err
		}

		written, err := io.Copy(tarWriter, entry.Body)
		if err != nil {
			return err
		}
		if written != entry.Size {
			return fmt.Errorf("short write for %s: %d of %d bytes", entry.Name, written, entry.Size)
		}
	}

	if err := tarWriter.Close(); err != nil {
		return err
	}
	return gzipWriter.Close()
}

type Visitor interface {
	VisitDirectory(info fs.FileInfo) error
	VisitFile(info fs.FileInfo) (io.WriteCloser, error)
}

func Extract(input io.Reader, visitor Visitor) error {
	gzipReader, err := gzip.NewReader(input)
	if err != nil {
		return err
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)

	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		info := header.FileInfo()
		if info.IsDir() {
			err = visitor.VisitDirectory(info)
			if err != nil {
				return err
			}
			continue
		}

		writer, err := visitor.VisitFile(info)
		if err != nil {
			return err
		}

		_, err = io.Copy(writer, tarReader)
		if err != nil {
			writer.Close()
			return err
		}

		err = writer.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
