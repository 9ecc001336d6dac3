// SPDX-License-Identifier: MIT

package rio

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"

	errs "github.com/bdlm/errors"
	"github.com/bdlm/log"
)

// FileExists reports whether path names an existing file or directory.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadCsv returns the lines of path joined with "\n". Line endings are
// normalised, so CRLF files read the same as LF files and the final line
// break is dropped.
func ReadCsv(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Join(ErrRead, errs.Wrap(err, 0, "reading "+path))
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), len(raw)+1)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return "", errors.Join(ErrRead, errs.Wrap(err, 0, "scanning "+path))
	}
	log.WithField("path", path).Debugf("read %d lines", len(lines))

	return strings.Join(lines, "\n"), nil
}

// WriteCsv writes data to path, replacing any existing content.
func WriteCsv(path, data string) error {
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return errors.Join(ErrWrite, errs.Wrap(err, 0, "writing "+path))
	}
	log.WithField("path", path).Debugf("wrote %d bytes", len(data))

	return nil
}
