package rankfile

import "errors"

var ErrRankFileNotFound = errors.New("rank and file record not found")
