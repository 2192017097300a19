package dump

import (
	"errors"
	"os"

	"dishseed/models"
)

var ErrDumpTooBig = errors.New("dump file has exceeded it's max size")

type Dumper interface {
	Dump(records []models.Record) error
	GetPath() string
	GetMaxSize() int64
}

// FileDumper appends records as JSON lines.
type FileDumper struct {
	file    string
	maxSize int64 // in megabytes
}

func NewFileDumper(path string, maxSize int64) Dumper {
	return &FileDumper{file: path, maxSize: maxSize}
}

func (d *FileDumper) GetMaxSize() int64 {
	return d.maxSize
}

func (d *FileDumper) GetPath() string {
	return d.file
}

func (d *FileDumper) Dump(records []models.Record) error {
	file, err := os.OpenFile(d.file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return err
	}
	// info.Size() is in bytes, so to convert to MB we divide twice
	if info.Size()/1024/1024 >= d.maxSize {
		return ErrDumpTooBig
	}
	for _, r := range records {
		if _, err = file.Write(append(r.JSON(), '\n')); err != nil {
			return err
		}
	}
	return nil
}
