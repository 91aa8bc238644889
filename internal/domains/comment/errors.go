package comment

import "errors"

var ErrCommentNotFound = errors.New("comment is not found")
