package cmd

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlgen/pkg/consts"
)

// sqlFiles returns path itself when it is a file, or every .sql file below it
// in lexical order when it is a directory.
func sqlFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.SQLExt) {
			files = append(files, p)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", path)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no SQL files found in directory: %s", path)
	}

	return files, nil
}

func pathArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("exactly one path argument is required")
	}
	return args[0], nil
}
