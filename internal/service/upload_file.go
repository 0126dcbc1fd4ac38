package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var uploadContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"application/pdf",
}

func InArray[T comparable](val T, array []T) bool {
	for _, v := range array {
		if val == v {
			return true
		}
	}
	return false
}

// Upload copies a worker photo or ID proof into mediaDir/folder under
// a fresh name "<prefix>_<uuid><ext>" and returns the stored path.
// An empty src means nothing was picked and returns "".
func Upload(src, mediaDir, folder, prefix string) (path string, err error) {
	if src == "" {
		return "", nil
	}

	mtype, err := mimetype.DetectFile(src)
	if err != nil {
		return "", err
	}
	if !InArray(mtype.String(), uploadContentTypes) {
		return "", fmt.Errorf("invalid file type, expected: %v, got: %s", uploadContentTypes, mtype.String())
	}

	targetPath := filepath.Join(mediaDir, folder)
	if _, err := os.Stat(targetPath); errors.Is(err, os.ErrNotExist) {
		if err = os.MkdirAll(targetPath, os.ModePerm); err != nil {
			return "", err
		}
	}

	path = filepath.Join(targetPath, prefix+"_"+uuid.NewString()+mtype.Extension())

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := in.Close(); closeErr != nil {
			log.Println("file upload src.Close() error:", closeErr)
		}
	}()

	if err = writeFile(path, in); err != nil {
		return "", err
	}

	return path, nil
}

// writeFile copies r into a new file at path. A failed copy leaves no
// file behind.
func writeFile(path string, r io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, r); err != nil {
		out.Close()
		if removeErr := os.Remove(path); removeErr != nil {
			log.Println("file upload os.Remove() error:", removeErr)
		}
		return err
	}

	return out.Close()
}
