package dberrors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether the error is the document store's
// document-does-not-exist error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
